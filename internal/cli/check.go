package cli

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/diskspace-io/diskspace/internal/disk"
	"github.com/diskspace-io/diskspace/internal/models"
)

var checkCmd = &cobra.Command{
	Use:   "check [PATH]",
	Short: "Check a single volume (same as running diskspace without a subcommand)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

// checkOptions are the flags of the check command.
type checkOptions struct {
	quiet   bool
	verbose bool
	bytes   bool
	files   bool
	zsh     bool

	minPercent      *float64
	minSpaceGiB     *uint64
	minFilesPercent *float64
	minFiles        *uint64
}

var checkOpts checkOptions

// Flag storage; copied into checkOpts only when the flag was set.
var (
	flagMinPercent      float64
	flagMinSpace        uint64
	flagMinFilesPercent float64
	flagMinFiles        uint64
)

func init() {
	addCheckFlags(checkCmd)
}

func addCheckFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVarP(&checkOpts.quiet, "quiet", "q", false, "Produce no output; exit status is 1 when the volume is low")
	f.BoolVarP(&checkOpts.verbose, "verbose", "v", false, "Produce more detailed output")
	f.BoolVar(&checkOpts.bytes, "bytes", false, "Print the raw number of available bytes (ignored with --verbose)")
	f.BoolVar(&checkOpts.files, "files", false, "Print the raw number of available files (ignored with --verbose or --bytes)")
	f.BoolVar(&checkOpts.zsh, "zsh", false, "Prompt defaults: --min-percent=5 --min-space=5 --min-files=5000 --min-files-percent=5")
	f.Float64Var(&flagMinPercent, "min-percent", 0, "Produce no output if at least this percentage of space is available")
	f.Uint64Var(&flagMinSpace, "min-space", 0, "Produce no output if at least this many GiB are available")
	f.Float64Var(&flagMinFilesPercent, "min-files-percent", 0, "Produce no output if at least this percentage of files is available")
	f.Uint64Var(&flagMinFiles, "min-files", 0, "Produce no output if at least this many files are available")
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts := checkOpts
	f := cmd.Flags()
	if f.Changed("min-percent") {
		opts.minPercent = &flagMinPercent
	}
	if f.Changed("min-space") {
		opts.minSpaceGiB = &flagMinSpace
	}
	if f.Changed("min-files-percent") {
		opts.minFilesPercent = &flagMinFilesPercent
	}
	if f.Changed("min-files") {
		opts.minFiles = &flagMinFiles
	}

	vol := models.VolumeID("/")
	if len(args) == 1 {
		vol = models.VolumeID(args[0])
	}

	stats, err := disk.NewSystemProber().Probe(context.Background(), []models.VolumeID{vol})
	if err != nil {
		return err
	}

	if low := writeCheck(cmd.OutOrStdout(), opts, stats[vol]); low && opts.quiet {
		return &exitError{code: 1}
	}
	return nil
}

// thresholds resolves the thresholds of the check command. A
// dimension without flags is unconstrained when another dimension of the same
// kind was given, and always trips otherwise, so a bare invocation always
// reports.
func (o checkOptions) thresholds() disk.Thresholds {
	var t disk.Thresholds

	switch {
	case o.minPercent != nil:
		t.MinFreeFraction = *o.minPercent / 100
	case o.zsh:
		t.MinFreeFraction = 0.05
	case o.minSpaceGiB != nil:
		t.MinFreeFraction = 0
	default:
		t.MinFreeFraction = 1
	}

	switch {
	case o.minSpaceGiB != nil:
		t.MinFreeBytes = gibToBytes(*o.minSpaceGiB)
	case o.zsh:
		t.MinFreeBytes = 5 * humanize.GiByte
	case o.minPercent != nil:
		t.MinFreeBytes = 0
	default:
		t.MinFreeBytes = math.MaxUint64
	}

	switch {
	case o.minFilesPercent != nil:
		t.MinFreeInodeFraction = *o.minFilesPercent / 100
	case o.zsh:
		t.MinFreeInodeFraction = 0.05
	case o.minFiles != nil:
		t.MinFreeInodeFraction = 0
	default:
		t.MinFreeInodeFraction = 1
	}

	switch {
	case o.minFiles != nil:
		t.MinFreeInodes = *o.minFiles
	case o.zsh:
		t.MinFreeInodes = 5000
	case o.minFilesPercent != nil:
		t.MinFreeInodes = 0
	default:
		t.MinFreeInodes = math.MaxUint64
	}

	return t
}

// gibToBytes converts GiB to bytes, saturating instead of wrapping.
func gibToBytes(gib uint64) uint64 {
	if gib > math.MaxUint64/humanize.GiByte {
		return math.MaxUint64
	}
	return gib * humanize.GiByte
}

// writeCheck prints the report for a single volume and returns whether it is
// low. Nothing is printed when the volume is fine or in quiet mode.
func writeCheck(w io.Writer, opts checkOptions, s models.VolumeStats) bool {
	t := opts.thresholds()
	if !t.IsLow(s) {
		return false
	}

	switch {
	case opts.quiet:
	case opts.verbose:
		fmt.Fprintf(w, "Available disk space: %s\n", humanize.Bytes(s.AvailableBytes))
		fmt.Fprintf(w, "%d bytes free\n", s.AvailableBytes)
		fmt.Fprintf(w, "%d bytes total\n", s.TotalBytes)
		fmt.Fprintf(w, "%d percent\n", disk.Percent(s.AvailableBytes, s.TotalBytes))
		if s.HasInodes {
			fmt.Fprintf(w, "%d files free\n", s.AvailableInodes)
			fmt.Fprintf(w, "%d files total\n", s.TotalInodes)
			fmt.Fprintf(w, "%d percent\n", disk.Percent(s.AvailableInodes, s.TotalInodes))
		}
	case opts.bytes:
		fmt.Fprintln(w, s.AvailableBytes)
	case opts.files:
		fmt.Fprintln(w, s.AvailableInodes)
	case t.InodesLow(s):
		fmt.Fprintf(w, "[disk: %s (%d files)]\n", humanize.Bytes(s.AvailableBytes), s.AvailableInodes)
	default:
		fmt.Fprintf(w, "[disk: %s]\n", humanize.Bytes(s.AvailableBytes))
	}
	return true
}
