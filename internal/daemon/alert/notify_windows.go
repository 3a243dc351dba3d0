//go:build windows

package alert

import (
	"golang.org/x/sys/windows"
)

// platformNotify shows a modal error message box.
func platformNotify(title, message string) error {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	m, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return err
	}
	_, err = windows.MessageBox(0, m, t, windows.MB_OK|windows.MB_ICONERROR|windows.MB_SYSTEMMODAL)
	return err
}
