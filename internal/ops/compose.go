package ops

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"agnoctl/internal/config"
)

// composeFileArgs builds the -f arguments for a compose invocation.
// With a GPU present the base file is layered with the GPU override.
func composeFileArgs(base, gpuOverride string, gpu bool) []string {
	args := []string{"-f", base}
	if gpu {
		args = append(args, "-f", gpuOverride)
	}
	return args
}

// stackUp launches the composition, GPU-layered when the host has a device.
func stackUp(ctx context.Context, cfg config.Config, wait bool) error {
	gpu := fnDetectGPU(ctx)
	if gpu {
		info("[up] GPU detected, launching GPU composition profile")
	} else {
		info("[up] no GPU detected, launching CPU-only composition profile")
	}
	if port := apiPort(cfg.APIBaseURL); port != 0 {
		if busy, _ := isPortBusy(port); busy {
			warn("[up] port %d already has a listener; the stack may already be running", port)
		}
	}
	args := append(composeFileArgs(cfg.ComposeFile, cfg.GPUComposeFile, gpu), "up", "-d")
	if err := fnCompose(ctx, args...); err != nil {
		return err
	}
	if wait {
		info("[up] waiting for API at %s/docs ...", cfg.APIBaseURL)
		if err := waitHTTP(cfg.APIBaseURL+"/docs", 200, 120*time.Second); err != nil {
			return err
		}
		info("[up] API is responding")
	}
	return nil
}

// stackDown stops the composition. The GPU override only adds device
// reservations, so the base file alone is enough to tear down.
func stackDown(ctx context.Context, cfg config.Config) error {
	return fnCompose(ctx, "-f", cfg.ComposeFile, "down")
}

func stackRestart(ctx context.Context, cfg config.Config, wait bool) error {
	if err := fnStackDown(ctx, cfg); err != nil {
		return err
	}
	return fnStackUp(ctx, cfg, wait)
}

// apiPort extracts the TCP port from the configured API base URL,
// falling back to the scheme default. Returns 0 when the URL is unusable.
func apiPort(baseURL string) int {
	u, err := url.Parse(baseURL)
	if err != nil {
		return 0
	}
	if p := u.Port(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0
		}
		return n
	}
	switch u.Scheme {
	case "http":
		return 80
	case "https":
		return 443
	}
	return 0
}

// composeCmd shells out to docker compose with the given arguments.
func composeCmd(ctx context.Context, args ...string) error {
	return runCmdStreaming(ctx, "docker", append([]string{"compose"}, args...)...)
}
