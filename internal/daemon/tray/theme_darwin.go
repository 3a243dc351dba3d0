//go:build darwin

package tray

import (
	"os/exec"
	"strings"
)

func systemUsesLightTheme() bool {
	// The key is absent in light mode, so a failing read means light.
	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		return true
	}
	return !strings.EqualFold(strings.TrimSpace(string(out)), "dark")
}

func scaleFactor() float64 {
	return 2
}
