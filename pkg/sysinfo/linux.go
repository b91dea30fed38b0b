//go:build linux
// +build linux

package sysinfo

import (
	"fmt"
	"os/exec"
)

// GetScreenDimensions returns the desktop dimensions on Linux. xrandr knows
// the current mode including under XWayland; xdpyinfo is the fallback for
// setups without it.
func GetScreenDimensions() (int, int, error) {
	if out, err := exec.Command("xrandr", "--current").Output(); err == nil {
		if w, h, err := parseXrandrOutput(string(out)); err == nil {
			return w, h, nil
		}
	}

	out, err := exec.Command("xdpyinfo").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get screen resolution: %w", err)
	}

	return parseXdpyinfoOutput(string(out))
}
