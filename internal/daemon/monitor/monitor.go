// Package monitor wires the poller, the snapshot store and the wake signal
// shared by the daemon's run modes.
package monitor

import (
	"context"

	"github.com/diskspace-io/diskspace/internal/daemon/alert"
	"github.com/diskspace-io/diskspace/internal/daemon/poller"
	"github.com/diskspace-io/diskspace/internal/daemon/state"
	"github.com/diskspace-io/diskspace/internal/disk"
	"github.com/diskspace-io/diskspace/internal/models"
)

// MaintainOp names the polling loop in fatal notifications.
const MaintainOp = "maintain"

// Monitor bundles the pieces shared by the tray and foreground modes.
type Monitor struct {
	Store  *state.Store
	Signal *state.Signal
	Poller *poller.Poller
}

// New creates a Monitor for volumes using the settings' thresholds and retry
// count. A nil prober uses the system prober.
func New(settings *models.Settings, volumes []models.VolumeID, prober disk.Prober) *Monitor {
	if prober == nil {
		prober = disk.NewSystemProber()
	}
	m := &Monitor{
		Store:  state.NewStore(),
		Signal: state.NewSignal(),
	}
	m.Poller = poller.New(poller.Options{
		Prober:     prober,
		Volumes:    volumes,
		Thresholds: disk.ThresholdsFromConfig(settings.Thresholds),
		Store:      m.Store,
		Signal:     m.Signal,
		Retries:    settings.Tray.ProbeRetries,
	})
	return m
}

// Maintain polls until ctx is done. A poll failure is escalated once and ends
// monitoring for good; the error is returned after the notification closes.
func (m *Monitor) Maintain(ctx context.Context, esc *alert.Escalator) error {
	err := m.Poller.Run(ctx)
	if err != nil {
		esc.Fatal(MaintainOp, err)
	}
	return err
}
