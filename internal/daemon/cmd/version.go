package cmd

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diskspace-io/diskspace/internal/buildinfo"
	"github.com/diskspace-io/diskspace/internal/config"
	"github.com/diskspace-io/diskspace/internal/daemon/poller"
)

var (
	versionNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "30", Dark: "45"})
	versionLabelStyle = lipgloss.NewStyle().Width(9).Foreground(lipgloss.AdaptiveColor{Light: "242", Dark: "240"})
)

var daemonVersionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version and runtime paths",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", versionNameStyle.Render("diskspaced"), buildinfo.Summary())

		row := func(label, value string) {
			fmt.Printf("  %s %s\n", versionLabelStyle.Render(label), value)
		}
		row("Platform", runtime.GOOS+"/"+runtime.GOARCH+", "+runtime.Version())
		row("Interval", poller.DefaultInterval.String())
		if path, err := config.SettingsFile(); err == nil {
			row("Settings", path)
		}
		if path, err := config.LogFile(); err == nil {
			row("Log", path)
		}
	},
}

func init() {
	rootCmd.AddCommand(daemonVersionCmd)
}
