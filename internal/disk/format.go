package disk

import (
	"fmt"
	"math/bits"

	"github.com/dustin/go-humanize"

	"github.com/diskspace-io/diskspace/internal/models"
)

// Percent returns floor(100 * avail / total), clamped to 100. A zero total
// yields 0.
func Percent(avail, total uint64) uint64 {
	if total == 0 {
		return 0
	}
	if avail >= total {
		return 100
	}
	hi, lo := bits.Mul64(avail, 100)
	q, _ := bits.Div64(hi, lo, total)
	return q
}

// HumanBytes formats a byte count with IEC units, e.g. "4.0 GiB".
func HumanBytes(n uint64) string {
	return humanize.IBytes(n)
}

// FormatSummary renders "<volume>: <percent>% (<size>)".
func FormatSummary(r models.VolumeReport) string {
	return fmt.Sprintf("%s: %d%% (%s)",
		r.Volume,
		Percent(r.Stats.AvailableBytes, r.Stats.TotalBytes),
		HumanBytes(r.Stats.AvailableBytes),
	)
}

// FormatDetail renders "<volume>: <percent>% (<size>, <n> files)". The file
// count is omitted for volumes without inode counters.
func FormatDetail(r models.VolumeReport) string {
	if !r.Stats.HasInodes {
		return FormatSummary(r)
	}
	return fmt.Sprintf("%s: %d%% (%s, %s files)",
		r.Volume,
		Percent(r.Stats.AvailableBytes, r.Stats.TotalBytes),
		HumanBytes(r.Stats.AvailableBytes),
		humanize.Comma(int64(r.Stats.AvailableInodes)),
	)
}
