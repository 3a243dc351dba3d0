package models

import "sort"

// VolumeID identifies a mount point, e.g. "/" or `C:\`.
type VolumeID string

// VolumeStats holds the filesystem statistics of a single volume at one point in time.
type VolumeStats struct {
	AvailableBytes  uint64
	TotalBytes      uint64
	AvailableInodes uint64
	TotalInodes     uint64
	HasInodes       bool // false where the platform reports no inode counters
}

// VolumeReport pairs a volume with its statistics.
type VolumeReport struct {
	Volume VolumeID
	Stats  VolumeStats
}

// Snapshot is the evaluated state of all monitored volumes, sorted by volume.
// An empty snapshot means nothing currently warrants attention.
type Snapshot []VolumeReport

// NewSnapshot builds a sorted snapshot from a stats mapping.
func NewSnapshot(stats map[VolumeID]VolumeStats) Snapshot {
	if len(stats) == 0 {
		return nil
	}
	snap := make(Snapshot, 0, len(stats))
	for vol, s := range stats {
		snap = append(snap, VolumeReport{Volume: vol, Stats: s})
	}
	sort.Slice(snap, func(i, j int) bool {
		return snap[i].Volume < snap[j].Volume
	})
	return snap
}

// Empty reports whether the snapshot holds no volumes.
func (s Snapshot) Empty() bool {
	return len(s) == 0
}

// Least returns the volume with the least available bytes.
// Ties resolve to the first volume in sort order.
func (s Snapshot) Least() (VolumeReport, bool) {
	if len(s) == 0 {
		return VolumeReport{}, false
	}
	least := s[0]
	for _, r := range s[1:] {
		if r.Stats.AvailableBytes < least.Stats.AvailableBytes {
			least = r
		}
	}
	return least, true
}

// Clone returns a copy that shares no backing array with s.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	out := make(Snapshot, len(s))
	copy(out, s)
	return out
}
