package ops

import (
	"context"
	"flag"
	"fmt"
	"os"

	"agnoctl/internal/config"
)

// Config carries the CLI-level options shared by every command.
type Config struct {
	ConfigPath string
	LogLvl     string
	ServeAddr  string
	Wait       bool
}

func usage() {
	fmt.Println("Usage: agnoctl [--config path] [--log-level info] [--addr :8090] [--wait] <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up                   launch the stack (GPU profile when a device is present)")
	fmt.Println("  down                 stop the stack")
	fmt.Println("  restart              down then up")
	fmt.Println("  models sync|list     ensure catalogue models are cached / list cached models")
	fmt.Println("  db init|shell        create stack tables / open psql in the db container")
	fmt.Println("  status               print one pass/fail line per service")
	fmt.Println("  validate             fail when Ollama or the database is unreachable")
	fmt.Println("  docs deploy-guide    regenerate docs/DEPLOY_GUIDE.md")
	fmt.Println("  docs baseline        regenerate docs/BASELINE_STATUS.md")
	fmt.Println("  serve                run the status daemon (/healthz, /status, /metrics)")
}

// Run dispatches the CLI command. It returns an error instead of exiting,
// enabling reuse from other packages or tests.
func Run(args []string, cfg *Config) error {
	stack, err := config.LoadOrEnv(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ctx := context.Background()
	switch args[0] {
	case "up":
		return fnStackUp(ctx, stack, cfg.Wait)
	case "down":
		return fnStackDown(ctx, stack)
	case "restart":
		return fnStackRestart(ctx, stack, cfg.Wait)
	case "models":
		if len(args) < 2 {
			return fmt.Errorf("models requires a subcommand: sync|list")
		}
		switch args[1] {
		case "sync":
			return fnModelsSync(ctx, stack)
		case "list":
			return fnModelsList(ctx, stack)
		default:
			return fmt.Errorf("unknown models subcommand: %s", args[1])
		}
	case "db":
		if len(args) < 2 {
			return fmt.Errorf("db requires a subcommand: init|shell")
		}
		switch args[1] {
		case "init":
			return fnInitDB(ctx, stack)
		case "shell":
			return fnDBShell(ctx, stack)
		default:
			return fmt.Errorf("unknown db subcommand: %s", args[1])
		}
	case "status":
		return fnRunStatus(ctx, stack)
	case "validate":
		return fnValidate(ctx, stack)
	case "docs":
		if len(args) < 2 {
			return fmt.Errorf("docs requires a subcommand: deploy-guide|baseline")
		}
		switch args[1] {
		case "deploy-guide":
			return fnGenDeployGuide("docs")
		case "baseline":
			return fnGenBaseline(ctx, stack, "docs")
		default:
			return fmt.Errorf("unknown docs subcommand: %s", args[1])
		}
	case "serve":
		return fnServe(ctx, stack, cfg.ServeAddr)
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

// ParseConfigWith parses flags using the provided FlagSet and args slice.
// This enables tests to inject their own FlagSet and arguments without
// mutating global state.
func ParseConfigWith(fs *flag.FlagSet, args []string) (*Config, []string) {
	cfg := &Config{}
	if fs.Lookup("config") == nil {
		fs.String("config", envStr("AGNOCTL_CONFIG", ""), "Path to a yaml/json/toml config file")
	}
	if fs.Lookup("log-level") == nil {
		fs.String("log-level", envStr("AGNOCTL_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	}
	if fs.Lookup("addr") == nil {
		fs.String("addr", envStr("AGNOCTL_ADDR", ":8090"), "Listen address for the serve command")
	}
	if fs.Lookup("wait") == nil {
		fs.Bool("wait", envBool("AGNOCTL_WAIT", false), "After up/restart, wait for the API to respond")
	}
	_ = fs.Parse(args)
	cfg.ConfigPath = envStr("AGNOCTL_CONFIG", "")
	if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
		cfg.ConfigPath = f.Value.String()
	}
	cfg.LogLvl = envStr("AGNOCTL_LOG_LEVEL", "info")
	if f := fs.Lookup("log-level"); f != nil && f.Value.String() != "" {
		cfg.LogLvl = f.Value.String()
	}
	cfg.ServeAddr = envStr("AGNOCTL_ADDR", ":8090")
	if f := fs.Lookup("addr"); f != nil && f.Value.String() != "" {
		cfg.ServeAddr = f.Value.String()
	}
	if f := fs.Lookup("wait"); f != nil {
		cfg.Wait = f.Value.String() == "true"
	}
	return cfg, fs.Args()
}

// MainWithArgs is a testable variant of Main that accepts args explicitly.
// It returns an exit code (0 for success, non-zero on error).
func MainWithArgs(args []string) int {
	for _, a := range args {
		if a == "-h" || a == "--help" || a == "help" {
			usage()
			return 0
		}
	}
	fs := flag.NewFlagSet("agnoctl", flag.ContinueOnError)
	cfg, rest := ParseConfigWith(fs, args)
	if len(rest) == 0 {
		usage()
		return 2
	}
	SetLogLevel(cfg.LogLvl)
	if err := Run(rest, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// Main returns an exit code (0 for success, non-zero on error) for use by cmd/agnoctl.
func Main() int { return MainWithArgs(os.Args[1:]) }
