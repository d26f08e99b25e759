package ops

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agnoctl/internal/config"
	"agnoctl/internal/httpapi"
	"agnoctl/pkg/types"
)

// checker adapts the ops check functions to the HTTP layer's Service.
type checker struct {
	cfg config.Config
}

func (c checker) Status(ctx context.Context) types.StatusReport {
	return RunChecks(ctx, c.cfg)
}

// serve runs the status daemon until SIGINT/SIGTERM.
func serve(ctx context.Context, cfg config.Config, addr string) error {
	mux := httpapi.NewMux(checker{cfg: cfg}, zlog)
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		info("[serve] status daemon listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-stop:
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		warn("[serve] graceful shutdown error: %v", err)
	}
	return nil
}
