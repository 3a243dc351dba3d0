// Package cli implements the diskspace CLI commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "diskspace [PATH]",
	Short: "Report when a volume is low on free space or inodes",
	Long: `diskspace checks free space and free inodes on a mounted volume and prints a
short warning when any configured floor is crossed. Without threshold flags
it always reports.

Other front-ends share the same check: a menu-bar plugin (diskspace menu), a
live terminal view (diskspace watch) and a system tray daemon (diskspace tray).`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCheck,
}

// exitError carries a process exit status without printing anything.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute runs the CLI and returns the process exit status.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	fmt.Fprintln(os.Stderr, styleError.Render("Error:"), err)
	return 1
}

func init() {
	addCheckFlags(rootCmd)

	// Add subcommands (alphabetical)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(trayCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(watchCmd)
}
