package ops

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"agnoctl/internal/config"
	"agnoctl/internal/ollama"
	"agnoctl/pkg/types"
)

// RunChecks performs the three service checks in fixed order. Every check
// always runs; one failing service never short-circuits the others.
func RunChecks(ctx context.Context, cfg config.Config) types.StatusReport {
	timed := func(f func() types.CheckResult) types.CheckResult {
		start := time.Now()
		c := f()
		c.ElapsedMS = time.Since(start).Milliseconds()
		return c
	}
	checks := []types.CheckResult{
		timed(func() types.CheckResult { return fnCheckAPI(ctx, cfg.APIBaseURL) }),
		timed(func() types.CheckResult { return fnCheckDB(ctx, cfg.Database) }),
		timed(func() types.CheckResult { return fnCheckOllama(ctx, cfg.OllamaHost) }),
	}
	healthy := true
	for _, c := range checks {
		if !c.OK {
			healthy = false
		}
	}
	return types.StatusReport{
		Checks:        checks,
		Healthy:       healthy,
		CheckedAtUnix: time.Now().Unix(),
	}
}

// checkAPI verifies the HTTP API answers on its docs endpoint.
func checkAPI(ctx context.Context, baseURL string) types.CheckResult {
	client := &http.Client{Timeout: 5 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/docs", nil)
	if err != nil {
		return types.CheckResult{Service: "api", Detail: err.Error()}
	}
	resp, err := client.Do(req)
	if err != nil {
		return types.CheckResult{Service: "api", Detail: "not responding: " + err.Error()}
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return types.CheckResult{Service: "api", Detail: fmt.Sprintf("HTTP %d", resp.StatusCode)}
	}
	return types.CheckResult{Service: "api", OK: true, Detail: "HTTP 200"}
}

// checkDB verifies the database accepts connections and lists its tables.
func checkDB(ctx context.Context, db config.DB) types.CheckResult {
	tables, err := fnListTables(ctx, db)
	if err != nil {
		return types.CheckResult{Service: "database", Detail: "not responding: " + err.Error()}
	}
	return types.CheckResult{Service: "database", OK: true, Detail: fmt.Sprintf("%d tables", len(tables))}
}

// checkOllama verifies the inference engine answers its tag listing.
func checkOllama(ctx context.Context, host string) types.CheckResult {
	tags, err := ollama.New(host).Tags(ctx)
	if err != nil {
		return types.CheckResult{Service: "ollama", Detail: "not responding: " + err.Error()}
	}
	return types.CheckResult{Service: "ollama", OK: true, Detail: fmt.Sprintf("%d models cached", len(tags))}
}

// printChecks writes one pass/fail line per service to stdout. The exit
// status stays 0 either way; the printed lines are the result.
func printChecks(report types.StatusReport) {
	for _, c := range report.Checks {
		mark := "OK  "
		if !c.OK {
			mark = "FAIL"
		}
		fmt.Printf("%s %-9s %s\n", mark, c.Service, c.Detail)
	}
}

func runStatus(ctx context.Context, cfg config.Config) error {
	printChecks(RunChecks(ctx, cfg))
	return nil
}

// validateStack checks the services the agent runtime cannot start
// without: the inference engine and the database. Unlike status, a
// failure here is an error so scripts can gate on the exit code.
func validateStack(ctx context.Context, cfg config.Config) error {
	info("[validate] checking Ollama at %s ...", cfg.OllamaHost)
	if c := fnCheckOllama(ctx, cfg.OllamaHost); !c.OK {
		return fmt.Errorf("ollama not reachable at %s: %s", cfg.OllamaHost, c.Detail)
	}
	info("[validate] Ollama is reachable")
	info("[validate] checking database at %s:%d ...", cfg.Database.Host, cfg.Database.Port)
	if c := fnCheckDB(ctx, cfg.Database); !c.OK {
		return fmt.Errorf("database not reachable at %s:%d: %s", cfg.Database.Host, cfg.Database.Port, c.Detail)
	}
	info("[validate] database is reachable")
	info("[validate] configuration check passed")
	return nil
}
