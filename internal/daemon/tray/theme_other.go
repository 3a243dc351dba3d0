//go:build !windows && !darwin

package tray

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
)

func systemUsesLightTheme() bool {
	out, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
	if err != nil {
		return false
	}
	return !strings.Contains(string(out), "dark")
}

func scaleFactor() float64 {
	for _, env := range []string{"GDK_SCALE", "QT_SCALE_FACTOR"} {
		if v := os.Getenv(env); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
				return f
			}
		}
	}
	return 1
}
