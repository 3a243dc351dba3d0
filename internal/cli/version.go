package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/diskspace-io/diskspace/internal/buildinfo"
	"github.com/diskspace-io/diskspace/internal/config"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version, settings location and tray daemon state",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", styleBrand.Render("diskspace"), buildinfo.Summary())

		row := func(label, value string) {
			fmt.Printf("  %s %s\n", styleLabel.Render(label), value)
		}
		row("Platform", runtime.GOOS+"/"+runtime.GOARCH+", "+runtime.Version())
		if path, err := config.SettingsFile(); err == nil {
			row("Settings", path)
		}

		running, info, err := config.IsDaemonRunning()
		switch {
		case err != nil:
			row("Tray", styleError.Render(err.Error()))
		case running && info != nil:
			row("Tray", styleOK.Render(fmt.Sprintf("running (PID %d)", info.PID)))
		default:
			row("Tray", styleHint.Render("not running"))
		}
	},
}
