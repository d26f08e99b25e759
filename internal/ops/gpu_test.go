package ops

import (
	"context"
	"testing"
)

func TestParseGPUList(t *testing.T) {
	cases := []struct {
		out  string
		want bool
	}{
		{"GPU 0: NVIDIA GeForce RTX 3060 Ti (UUID: GPU-xxxx)", true},
		{"GPU 0: A\nGPU 1: B", true},
		{"", false},
		{"No devices were found", false},
		{"some unrelated output", false},
	}
	for _, tc := range cases {
		if got := parseGPUList(tc.out); got != tc.want {
			t.Fatalf("parseGPUList(%q) = %v, want %v", tc.out, got, tc.want)
		}
	}
}

func TestDetectGPUWithoutTooling(t *testing.T) {
	// Empty PATH guarantees nvidia-smi cannot be found: the selector must
	// degrade to the CPU-only path, not error.
	t.Setenv("PATH", "")
	if detectGPU(context.Background()) {
		t.Fatalf("expected CPU-only result without nvidia-smi")
	}
}

func TestGPUSummaryWithoutTooling(t *testing.T) {
	t.Setenv("PATH", "")
	if got := gpuSummary(context.Background()); got != "N/A" {
		t.Fatalf("summary = %q, want N/A", got)
	}
}
