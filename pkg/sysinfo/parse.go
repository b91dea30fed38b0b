package sysinfo

import (
	"fmt"
	"regexp"
	"strconv"
)

// resolutionRegex matches display-tool output like "Resolution: 2880 x 1864"
// or "1920x1080".
var resolutionRegex = regexp.MustCompile(`Resolution:\s*(\d+)\s*x\s*(\d+)`)

// dimensionsRegex matches xdpyinfo output like "dimensions:    1920x1080 pixels".
var dimensionsRegex = regexp.MustCompile(`dimensions:\s*(\d+)x(\d+)\s+pixels`)

// currentModeRegex matches xrandr output like "current 1920 x 1080".
var currentModeRegex = regexp.MustCompile(`current\s+(\d+)\s*x\s*(\d+)`)

// parseProfilerOutput extracts the first resolution from system_profiler
// text output.
func parseProfilerOutput(out string) (int, int, error) {
	return parseMatch(resolutionRegex.FindStringSubmatch(out), out)
}

// parseXdpyinfoOutput extracts the screen dimensions from xdpyinfo output.
func parseXdpyinfoOutput(out string) (int, int, error) {
	return parseMatch(dimensionsRegex.FindStringSubmatch(out), out)
}

// parseXrandrOutput extracts the current mode from xrandr --current output.
func parseXrandrOutput(out string) (int, int, error) {
	return parseMatch(currentModeRegex.FindStringSubmatch(out), out)
}

func parseMatch(matches []string, out string) (int, int, error) {
	if len(matches) < 3 {
		return 0, 0, fmt.Errorf("failed to parse screen resolution from output: %.80s", out)
	}

	width, errW := strconv.Atoi(matches[1])
	height, errH := strconv.Atoi(matches[2])
	if errW != nil || errH != nil {
		return 0, 0, fmt.Errorf("failed to convert dimensions: %v, %v", errW, errH)
	}

	return width, height, nil
}
