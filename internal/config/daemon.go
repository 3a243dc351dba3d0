package config

import (
	"os"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/diskspace-io/diskspace/internal/models"
)

// LoadDaemonInfo loads the tray instance info from tray.yaml.
// Returns nil if the file doesn't exist.
func LoadDaemonInfo() (*models.DaemonInfo, error) {
	path, err := DaemonFile()
	if err != nil {
		return nil, err
	}

	if !FileExists(path) {
		return nil, nil
	}

	var info models.DaemonInfo
	if err := LoadYAML(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveDaemonInfo saves the tray instance info to tray.yaml.
func SaveDaemonInfo(info *models.DaemonInfo) error {
	if err := EnsureStateDir(); err != nil {
		return err
	}

	path, err := DaemonFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, info)
}

// RemoveDaemonInfo removes the tray.yaml file.
func RemoveDaemonInfo() error {
	path, err := DaemonFile()
	if err != nil {
		return err
	}

	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// IsDaemonRunning checks if the tray daemon process is still running.
// Returns true if tray.yaml exists and the PID is alive.
func IsDaemonRunning() (bool, *models.DaemonInfo, error) {
	info, err := LoadDaemonInfo()
	if err != nil {
		return false, nil, err
	}
	if info == nil {
		return false, nil, nil
	}

	alive, err := process.PidExists(int32(info.PID))
	if err != nil || !alive {
		// Process doesn't exist, clean up stale file
		_ = RemoveDaemonInfo()
		return false, info, nil
	}

	return true, info, nil
}
