package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/diskspace-io/diskspace/internal/config"
	"github.com/diskspace-io/diskspace/internal/disk"
	"github.com/diskspace-io/diskspace/internal/menubar"
	"github.com/diskspace-io/diskspace/internal/models"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print BitBar/SwiftBar plugin output for the configured volumes",
	Long: `Print menu-bar plugin output for the configured volumes.

Link a script that runs "diskspace menu" into the BitBar or SwiftBar plugin
folder. Nothing is printed while every volume is above its thresholds, which
hides the plugin.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		buildMenu(cmd.Context(), config.LoadSettings, disk.NewSystemProber()).Render()
	},
}

// buildMenu renders the plugin output. Failures become a single-line error
// menu so the plugin stays visible.
func buildMenu(ctx context.Context, load func() (*models.Settings, error), prober disk.Prober) menubar.Menu {
	if ctx == nil {
		ctx = context.Background()
	}

	settings, err := load()
	if err != nil {
		return menubar.ErrorMenu("YAML", err)
	}

	stats, err := prober.Probe(ctx, settings.Volumes)
	if err != nil {
		return menubar.ErrorMenu("I/O", err)
	}

	snap := disk.Evaluate(stats, disk.ThresholdsFromConfig(settings.Thresholds))
	return menubar.Build(snap, settings.Tray.Analyzer)
}
