package tui

import (
	"time"

	"github.com/diskspace-io/diskspace/internal/models"
)

// snapshotMsg carries the store contents read after a wake.
type snapshotMsg struct {
	Snapshot models.Snapshot
	At       time.Time
}

// pollErrMsg signals that the poller stopped on a probe failure.
type pollErrMsg struct {
	Err error
}
