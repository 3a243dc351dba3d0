package models

import (
	"fmt"
	"math"
	"runtime"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// ByteSize is a byte count that accepts either an integer or a human string
// ("5 GiB", "500MB") in YAML.
type ByteSize uint64

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *ByteSize) UnmarshalYAML(node *yaml.Node) error {
	var n uint64
	if err := node.Decode(&n); err == nil {
		*b = ByteSize(n)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("invalid byte size at line %d: %w", node.Line, err)
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return fmt.Errorf("invalid byte size %q at line %d: %w", s, node.Line, err)
	}
	*b = ByteSize(n)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (b ByteSize) MarshalYAML() (interface{}, error) {
	return humanize.IBytes(uint64(b)), nil
}

// ThresholdsConfig holds the low-space floors. Percentages are 0-100.
type ThresholdsConfig struct {
	MinFreeSpace        ByteSize `yaml:"min_free_space"`
	MinFreePercent      float64  `yaml:"min_free_percent"`
	MinFreeInodes       uint64   `yaml:"min_free_inodes"`
	MinFreeInodePercent float64  `yaml:"min_free_inode_percent"`
}

// Validate checks that the percentages lie in [0, 100].
func (c ThresholdsConfig) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"min_free_percent", c.MinFreePercent},
		{"min_free_inode_percent", c.MinFreeInodePercent},
	} {
		if math.IsNaN(f.value) || f.value < 0 || f.value > 100 {
			return fmt.Errorf("thresholds.%s must be between 0 and 100, got %v", f.name, f.value)
		}
	}
	return nil
}

// LaunchConfig describes an external command started from a menu action.
type LaunchConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`
}

// TrayConfig holds settings specific to the tray daemon.
type TrayConfig struct {
	// Volumes overrides the top-level volume list for the tray. Empty means the
	// platform volume roots.
	Volumes      []VolumeID     `yaml:"volumes,omitempty"`
	Analyzer     LaunchConfig   `yaml:"analyzer"`
	Cleanup      []LaunchConfig `yaml:"cleanup,omitempty"`
	ProbeRetries uint64         `yaml:"probe_retries"` // 0 = stop monitoring on the first probe error
}

// Settings represents the global settings.
// This corresponds to <config dir>/diskspace/settings.yaml.
type Settings struct {
	Version    int              `yaml:"version"`
	Volumes    []VolumeID       `yaml:"volumes"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Tray       TrayConfig       `yaml:"tray"`
}

// DefaultThresholds returns the default floors: 5 GiB, 5%, 5000 inodes, 5%.
func DefaultThresholds() ThresholdsConfig {
	return ThresholdsConfig{
		MinFreeSpace:        5 * humanize.GiByte,
		MinFreePercent:      5,
		MinFreeInodes:       5000,
		MinFreeInodePercent: 5,
	}
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:    1,
		Volumes:    []VolumeID{"/"},
		Thresholds: DefaultThresholds(),
		Tray: TrayConfig{
			Analyzer: defaultAnalyzer(),
			Cleanup:  defaultCleanup(),
		},
	}
}

// TrayVolumes returns the volumes the tray monitors.
func (s *Settings) TrayVolumes() []VolumeID {
	if len(s.Tray.Volumes) > 0 {
		return s.Tray.Volumes
	}
	return PlatformVolumeRoots()
}

// PlatformVolumeRoots returns the fixed volume set of the tray front-end.
func PlatformVolumeRoots() []VolumeID {
	if runtime.GOOS == "windows" {
		return []VolumeID{`C:\`}
	}
	return []VolumeID{"/"}
}

func defaultAnalyzer() LaunchConfig {
	switch runtime.GOOS {
	case "windows":
		return LaunchConfig{Command: "windirstat.exe"}
	case "darwin":
		return LaunchConfig{Command: "/usr/bin/open", Args: []string{"-a", "DaisyDisk"}}
	default:
		return LaunchConfig{Command: "baobab"}
	}
}

func defaultCleanup() []LaunchConfig {
	if runtime.GOOS == "windows" {
		return []LaunchConfig{{
			Command: "wt",
			Args:    []string{"new-tab", "pwsh.exe", "-c", "cargo sweep -ir"},
		}}
	}
	return nil
}
