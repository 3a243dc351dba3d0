package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/diskspace-io/diskspace/internal/config"
	"github.com/diskspace-io/diskspace/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Inspect or initialize the settings file",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE:  runSettingsShow,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	RunE:  runSettingsPath,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with default values",
	RunE:  runSettingsInit,
}

var settingsInitForce bool

func init() {
	settingsInitCmd.Flags().BoolVarP(&settingsInitForce, "force", "f", false, "Overwrite an existing settings file")

	settingsCmd.AddCommand(settingsInitCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	settingsCmd.AddCommand(settingsShowCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(settings)
}

func runSettingsPath(cmd *cobra.Command, args []string) error {
	path, err := config.SettingsFile()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runSettingsInit(cmd *cobra.Command, args []string) error {
	path, err := config.SettingsFile()
	if err != nil {
		return err
	}

	if config.FileExists(path) && !settingsInitForce {
		fmt.Fprintf(os.Stderr, "%s %s already exists (use --force to overwrite)\n", styleWarning.Render("!"), path)
		return nil
	}

	if err := config.SaveSettings(models.NewSettings()); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	fmt.Printf("%s Wrote %s\n", styleOK.Render("✓"), styleCommand.Render(path))
	return nil
}
