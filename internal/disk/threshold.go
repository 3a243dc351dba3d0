// Package disk probes volume statistics and decides whether any volume is low
// on space or inodes.
package disk

import (
	"github.com/diskspace-io/diskspace/internal/models"
)

// Thresholds are the floors below which a volume counts as low.
// Fractions are in [0, 1].
type Thresholds struct {
	MinFreeBytes         uint64
	MinFreeFraction      float64
	MinFreeInodes        uint64
	MinFreeInodeFraction float64
}

// DefaultThresholds returns 5 GiB, 5%, 5000 inodes, 5%.
func DefaultThresholds() Thresholds {
	return ThresholdsFromConfig(models.DefaultThresholds())
}

// ThresholdsFromConfig converts the percent-based settings into Thresholds.
func ThresholdsFromConfig(cfg models.ThresholdsConfig) Thresholds {
	return Thresholds{
		MinFreeBytes:         uint64(cfg.MinFreeSpace),
		MinFreeFraction:      cfg.MinFreePercent / 100,
		MinFreeInodes:        cfg.MinFreeInodes,
		MinFreeInodeFraction: cfg.MinFreeInodePercent / 100,
	}
}

// IsLow reports whether a volume fails any of the space tests.
func (t Thresholds) IsLow(s models.VolumeStats) bool {
	return t.SpaceLow(s) || t.InodesLow(s)
}

// SpaceLow reports whether the byte tests trip. A zero total never trips the
// fractional test.
func (t Thresholds) SpaceLow(s models.VolumeStats) bool {
	if s.AvailableBytes < t.MinFreeBytes {
		return true
	}
	return s.TotalBytes > 0 && fraction(s.AvailableBytes, s.TotalBytes) < t.MinFreeFraction
}

// InodesLow reports whether the inode tests trip. Volumes without inode
// counters never trip.
func (t Thresholds) InodesLow(s models.VolumeStats) bool {
	if !s.HasInodes {
		return false
	}
	if s.AvailableInodes < t.MinFreeInodes {
		return true
	}
	return s.TotalInodes > 0 && fraction(s.AvailableInodes, s.TotalInodes) < t.MinFreeInodeFraction
}

// Evaluate returns the full sorted snapshot if at least one volume is low, and
// the empty snapshot otherwise.
func Evaluate(stats map[models.VolumeID]models.VolumeStats, t Thresholds) models.Snapshot {
	for _, s := range stats {
		if t.IsLow(s) {
			return models.NewSnapshot(stats)
		}
	}
	return nil
}

func fraction(avail, total uint64) float64 {
	return float64(avail) / float64(total)
}
