//go:build !windows

package alert

import (
	"github.com/gen2brain/beeep"
)

// platformNotify raises a desktop alert.
func platformNotify(title, message string) error {
	return beeep.Alert(title, message, "")
}
