package ops

import (
	"context"
	"os/exec"
	"strings"
)

// detectGPU reports whether a usable NVIDIA device is visible on the host.
// A missing nvidia-smi binary or a failing probe means CPU-only; both are
// normal alternate paths, not errors.
func detectGPU(ctx context.Context) bool {
	if _, err := exec.LookPath("nvidia-smi"); err != nil {
		debug("[gpu] nvidia-smi not on PATH, assuming CPU-only host")
		return false
	}
	out, err := runCmdCapture(ctx, "nvidia-smi", "-L")
	if err != nil {
		warn("[gpu] nvidia-smi probe failed (%v), falling back to CPU-only", err)
		return false
	}
	return parseGPUList(out)
}

// parseGPUList inspects `nvidia-smi -L` output, one "GPU N: name" line per device.
func parseGPUList(out string) bool {
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "GPU ") {
			return true
		}
	}
	return false
}

// gpuSummary returns a one-line device description for the baseline doc,
// or "N/A" when no GPU tooling is available.
func gpuSummary(ctx context.Context) string {
	if _, err := exec.LookPath("nvidia-smi"); err != nil {
		return "N/A"
	}
	out, err := runCmdCapture(ctx, "nvidia-smi", "--query-gpu=name,memory.total", "--format=csv,noheader")
	if err != nil || out == "" {
		return "N/A"
	}
	return out
}
