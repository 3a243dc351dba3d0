package config

import (
	"fmt"

	"github.com/diskspace-io/diskspace/internal/models"
)

// LoadSettings loads the settings from settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := SettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom loads settings from an explicit path. Fields missing from
// the file keep their default values.
func LoadSettingsFrom(path string) (*models.Settings, error) {
	if !FileExists(path) {
		return models.NewSettings(), nil
	}
	settings := models.NewSettings()
	if err := LoadYAML(path, settings); err != nil {
		return nil, err
	}
	if err := settings.Thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	if len(settings.Volumes) == 0 {
		settings.Volumes = []models.VolumeID{"/"}
	}
	return settings, nil
}

// SaveSettings saves the settings to settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := SettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}
