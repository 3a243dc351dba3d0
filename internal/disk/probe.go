package disk

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"

	"github.com/diskspace-io/diskspace/internal/models"
)

// Prober retrieves statistics for a set of volumes. A failure on any volume
// fails the whole call.
type Prober interface {
	Probe(ctx context.Context, volumes []models.VolumeID) (map[models.VolumeID]models.VolumeStats, error)
}

// ProbeError reports that a volume's statistics could not be retrieved.
type ProbeError struct {
	Volume models.VolumeID
	Err    error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("failed to query volume %s: %v", e.Volume, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// SystemProber reads statistics from the operating system.
type SystemProber struct{}

// NewSystemProber creates a prober backed by the platform filesystem APIs.
func NewSystemProber() *SystemProber {
	return &SystemProber{}
}

// Probe implements Prober.
func (p *SystemProber) Probe(ctx context.Context, volumes []models.VolumeID) (map[models.VolumeID]models.VolumeStats, error) {
	out := make(map[models.VolumeID]models.VolumeStats, len(volumes))
	for _, vol := range volumes {
		usage, err := disk.UsageWithContext(ctx, string(vol))
		if err != nil {
			return nil, &ProbeError{Volume: vol, Err: err}
		}
		out[vol] = statsFromUsage(usage)
	}
	return out, nil
}

// statsFromUsage maps gopsutil usage. On Unix Free is Bavail*Bsize, the space
// available to unprivileged users.
func statsFromUsage(u *disk.UsageStat) models.VolumeStats {
	return models.VolumeStats{
		AvailableBytes:  u.Free,
		TotalBytes:      u.Total,
		AvailableInodes: u.InodesFree,
		TotalInodes:     u.InodesTotal,
		HasInodes:       u.InodesTotal > 0,
	}
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context, volumes []models.VolumeID) (map[models.VolumeID]models.VolumeStats, error)

// Probe implements Prober.
func (f ProberFunc) Probe(ctx context.Context, volumes []models.VolumeID) (map[models.VolumeID]models.VolumeStats, error) {
	return f(ctx, volumes)
}
