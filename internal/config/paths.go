// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the name of the diskspace directory inside the user
	// config and cache directories.
	AppDirName = "diskspace"
)

// File names
const (
	SettingsFileName = "settings.yaml"
	DaemonFileName   = "tray.yaml"
	LogFileName      = "diskspaced.log"
)

// Environment overrides, mostly useful for tests and portable installs.
const (
	ConfigDirEnv = "DISKSPACE_CONFIG_DIR"
	StateDirEnv  = "DISKSPACE_STATE_DIR"
)

// ConfigDir returns the directory holding settings.yaml.
func ConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppDirName), nil
}

// StateDir returns the directory holding the tray instance file and log.
func StateDir() (string, error) {
	if dir := os.Getenv(StateDirEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppDirName), nil
}

// SettingsFile returns the path to the settings.yaml file.
func SettingsFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// DaemonFile returns the path to the tray.yaml instance file.
func DaemonFile() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DaemonFileName), nil
}

// LogFile returns the path to the tray daemon log.
func LogFile() (string, error) {
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

// EnsureStateDir creates the state directory if it doesn't exist.
func EnsureStateDir() error {
	dir, err := StateDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
