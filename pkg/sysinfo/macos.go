//go:build darwin
// +build darwin

package sysinfo

import (
	"fmt"
	"os/exec"
)

// GetScreenDimensions returns the primary desktop dimensions on macOS.
func GetScreenDimensions() (int, int, error) {
	cmd := exec.Command("system_profiler", "SPDisplaysDataType")
	out, err := cmd.Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to run system_profiler: %w", err)
	}

	return parseProfilerOutput(string(out))
}
