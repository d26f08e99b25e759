package ops

import (
	"context"
	"reflect"
	"testing"

	"agnoctl/internal/config"
)

func TestComposeFileArgs(t *testing.T) {
	got := composeFileArgs("docker-compose.yml", "docker-compose.gpu.yml", false)
	if !reflect.DeepEqual(got, []string{"-f", "docker-compose.yml"}) {
		t.Fatalf("cpu args: %v", got)
	}
	got = composeFileArgs("docker-compose.yml", "docker-compose.gpu.yml", true)
	want := []string{"-f", "docker-compose.yml", "-f", "docker-compose.gpu.yml"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("gpu args: %v, want %v", got, want)
	}
}

func TestAPIPort(t *testing.T) {
	cases := []struct {
		url  string
		want int
	}{
		{"http://localhost:8000", 8000},
		{"http://127.0.0.1:9000", 9000},
		{"http://api.internal", 80},
		{"https://api.internal", 443},
		{"http://host:notaport", 0},
	}
	for _, tc := range cases {
		if got := apiPort(tc.url); got != tc.want {
			t.Fatalf("apiPort(%q) = %d, want %d", tc.url, got, tc.want)
		}
	}
}

func TestStackUpChoosesCPUPathWithoutGPU(t *testing.T) {
	var composeArgs []string
	restore := withStubs(t, func() {
		fnDetectGPU = func(context.Context) bool { return false }
		fnCompose = func(ctx context.Context, args ...string) error {
			composeArgs = args
			return nil
		}
	})
	defer restore()

	cfg := config.Default()
	if err := stackUp(context.Background(), cfg, false); err != nil {
		t.Fatalf("up: %v", err)
	}
	want := []string{"-f", "docker-compose.yml", "up", "-d"}
	if !reflect.DeepEqual(composeArgs, want) {
		t.Fatalf("compose args %v, want %v", composeArgs, want)
	}
}

func TestStackUpLayersGPUOverrideWithGPU(t *testing.T) {
	var composeArgs []string
	restore := withStubs(t, func() {
		fnDetectGPU = func(context.Context) bool { return true }
		fnCompose = func(ctx context.Context, args ...string) error {
			composeArgs = args
			return nil
		}
	})
	defer restore()

	cfg := config.Default()
	if err := stackUp(context.Background(), cfg, false); err != nil {
		t.Fatalf("up: %v", err)
	}
	want := []string{"-f", "docker-compose.yml", "-f", "docker-compose.gpu.yml", "up", "-d"}
	if !reflect.DeepEqual(composeArgs, want) {
		t.Fatalf("compose args %v, want %v", composeArgs, want)
	}
}

func TestStackDownUsesBaseFileOnly(t *testing.T) {
	var composeArgs []string
	restore := withStubs(t, func() {
		fnCompose = func(ctx context.Context, args ...string) error {
			composeArgs = args
			return nil
		}
	})
	defer restore()

	if err := stackDown(context.Background(), config.Default()); err != nil {
		t.Fatalf("down: %v", err)
	}
	want := []string{"-f", "docker-compose.yml", "down"}
	if !reflect.DeepEqual(composeArgs, want) {
		t.Fatalf("compose args %v, want %v", composeArgs, want)
	}
}

func TestStackRestartRunsDownThenUp(t *testing.T) {
	var order []string
	restore := withStubs(t, func() {
		fnStackDown = func(context.Context, config.Config) error {
			order = append(order, "down")
			return nil
		}
		fnStackUp = func(_ context.Context, _ config.Config, wait bool) error {
			order = append(order, "up")
			if !wait {
				t.Fatalf("wait flag not propagated")
			}
			return nil
		}
	})
	defer restore()

	if err := stackRestart(context.Background(), config.Default(), true); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if !reflect.DeepEqual(order, []string{"down", "up"}) {
		t.Fatalf("order: %v", order)
	}
}
