package models

import (
	"time"

	"github.com/google/uuid"
)

// DaemonInfo describes the running tray daemon.
// This corresponds to <state dir>/tray.yaml.
type DaemonInfo struct {
	Version    int       `yaml:"version"`
	InstanceID string    `yaml:"instance_id"`
	PID        int       `yaml:"pid"`
	Foreground bool      `yaml:"foreground"`
	StartedAt  time.Time `yaml:"started_at"`
}

// NewDaemonInfo creates a new daemon info with current values.
func NewDaemonInfo(pid int, foreground bool) *DaemonInfo {
	return &DaemonInfo{
		Version:    1,
		InstanceID: uuid.New().String(),
		PID:        pid,
		Foreground: foreground,
		StartedAt:  time.Now().UTC(),
	}
}
