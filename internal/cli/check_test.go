package cli

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/dustin/go-humanize"
	"github.com/stretchr/testify/assert"

	"github.com/diskspace-io/diskspace/internal/disk"
	"github.com/diskspace-io/diskspace/internal/models"
)

func f64(v float64) *float64 { return &v }
func u64(v uint64) *uint64   { return &v }

func TestCheckThresholds(t *testing.T) {
	tests := []struct {
		name string
		opts checkOptions
		want disk.Thresholds
	}{
		{
			name: "no flags always reports",
			opts: checkOptions{},
			want: disk.Thresholds{
				MinFreeBytes: math.MaxUint64, MinFreeFraction: 1,
				MinFreeInodes: math.MaxUint64, MinFreeInodeFraction: 1,
			},
		},
		{
			name: "zsh defaults",
			opts: checkOptions{zsh: true},
			want: disk.Thresholds{
				MinFreeBytes: 5 * humanize.GiByte, MinFreeFraction: 0.05,
				MinFreeInodes: 5000, MinFreeInodeFraction: 0.05,
			},
		},
		{
			name: "min-space leaves percent unconstrained",
			opts: checkOptions{minSpaceGiB: u64(10)},
			want: disk.Thresholds{
				MinFreeBytes: 10 * humanize.GiByte, MinFreeFraction: 0,
				MinFreeInodes: math.MaxUint64, MinFreeInodeFraction: 1,
			},
		},
		{
			name: "min-percent leaves space unconstrained",
			opts: checkOptions{minPercent: f64(20)},
			want: disk.Thresholds{
				MinFreeBytes: 0, MinFreeFraction: 0.2,
				MinFreeInodes: math.MaxUint64, MinFreeInodeFraction: 1,
			},
		},
		{
			name: "explicit flags override zsh",
			opts: checkOptions{zsh: true, minPercent: f64(1), minFiles: u64(10)},
			want: disk.Thresholds{
				MinFreeBytes: 5 * humanize.GiByte, MinFreeFraction: 0.01,
				MinFreeInodes: 10, MinFreeInodeFraction: 0.05,
			},
		},
		{
			name: "huge min-space saturates",
			opts: checkOptions{minSpaceGiB: u64(1 << 40)},
			want: disk.Thresholds{
				MinFreeBytes: math.MaxUint64, MinFreeFraction: 0,
				MinFreeInodes: math.MaxUint64, MinFreeInodeFraction: 1,
			},
		},
		{
			name: "inode flags",
			opts: checkOptions{minFilesPercent: f64(50), minSpaceGiB: u64(1), minPercent: f64(1)},
			want: disk.Thresholds{
				MinFreeBytes: humanize.GiByte, MinFreeFraction: 0.01,
				MinFreeInodes: 0, MinFreeInodeFraction: 0.5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.thresholds())
		})
	}
}

func TestGibToBytes(t *testing.T) {
	assert.Equal(t, uint64(5*humanize.GiByte), gibToBytes(5))
	assert.Equal(t, uint64(math.MaxUint64/humanize.GiByte*humanize.GiByte), gibToBytes(math.MaxUint64/humanize.GiByte))
	assert.Equal(t, uint64(math.MaxUint64), gibToBytes(math.MaxUint64/humanize.GiByte+1))
}

func TestWriteCheck(t *testing.T) {
	low := models.VolumeStats{
		AvailableBytes: 2 * humanize.GByte, TotalBytes: 100 * humanize.GByte,
		AvailableInodes: 100, TotalInodes: 1000, HasInodes: true,
	}
	plenty := models.VolumeStats{
		AvailableBytes: 50 * humanize.GByte, TotalBytes: 100 * humanize.GByte,
		AvailableInodes: 900000, TotalInodes: 1000000, HasInodes: true,
	}

	tests := []struct {
		name    string
		opts    checkOptions
		stats   models.VolumeStats
		want    string
		wantLow bool
	}{
		{
			name:    "not low prints nothing",
			opts:    checkOptions{zsh: true},
			stats:   plenty,
			want:    "",
			wantLow: false,
		},
		{
			name:    "space only",
			opts:    checkOptions{minSpaceGiB: u64(5)},
			stats:   models.VolumeStats{AvailableBytes: 2 * humanize.GByte, TotalBytes: 100 * humanize.GByte},
			want:    "[disk: 2.0 GB]\n",
			wantLow: true,
		},
		{
			name:    "inode test tripped adds files",
			opts:    checkOptions{zsh: true},
			stats:   low,
			want:    "[disk: 2.0 GB (100 files)]\n",
			wantLow: true,
		},
		{
			name:    "bytes",
			opts:    checkOptions{bytes: true},
			stats:   low,
			want:    "2000000000\n",
			wantLow: true,
		},
		{
			name:    "files",
			opts:    checkOptions{files: true},
			stats:   low,
			want:    "100\n",
			wantLow: true,
		},
		{
			name:    "verbose wins over bytes",
			opts:    checkOptions{verbose: true, bytes: true},
			stats:   low,
			want:    "Available disk space: 2.0 GB\n2000000000 bytes free\n100000000000 bytes total\n2 percent\n100 files free\n1000 files total\n10 percent\n",
			wantLow: true,
		},
		{
			name:    "quiet prints nothing but reports low",
			opts:    checkOptions{quiet: true},
			stats:   low,
			want:    "",
			wantLow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.wantLow, writeCheck(&buf, tt.opts, tt.stats))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteCheckVerboseWithoutInodes(t *testing.T) {
	var buf bytes.Buffer
	writeCheck(&buf, checkOptions{verbose: true}, models.VolumeStats{AvailableBytes: 1, TotalBytes: 4})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "25 percent", lines[3])
}
