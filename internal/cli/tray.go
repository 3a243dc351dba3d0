package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/diskspace-io/diskspace/internal/config"
)

var trayCmd = &cobra.Command{
	Use:   "tray",
	Short: "Manage the diskspace tray daemon",
	Long: `Manage the diskspace tray daemon (diskspaced).

The daemon polls the configured volumes in the background and shows a
notification-area icon while any of them is low.`,
}

var trayStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show tray daemon status",
	RunE:  runTrayStatus,
}

var trayStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the tray daemon",
	RunE:  runTrayStart,
}

var trayStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the tray daemon",
	RunE:  runTrayStop,
}

// daemonBinary is the executable name of the tray daemon.
const daemonBinary = "diskspaced"

// waitSteps * waitStep bounds how long start and stop wait for the daemon.
const (
	waitSteps = 50
	waitStep  = 100 * time.Millisecond
)

func init() {
	trayCmd.AddCommand(trayStartCmd)
	trayCmd.AddCommand(trayStatusCmd)
	trayCmd.AddCommand(trayStopCmd)
}

func runTrayStart(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}

	if running && info != nil {
		fmt.Printf("Tray daemon is already running (PID %d).\n", info.PID)
		return nil
	}

	fmt.Print("Starting tray daemon...")
	if startErr := startDaemon(); startErr != nil {
		fmt.Println()
		return startErr
	}

	_, freshInfo, err := config.IsDaemonRunning()
	if err != nil || freshInfo == nil {
		fmt.Println(" " + styleOK.Render("started."))
		return nil
	}

	fmt.Printf(" %s (PID %d).\n", styleOK.Render("started"), freshInfo.PID)
	return nil
}

func runTrayStatus(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}

	if !running || info == nil {
		fmt.Println("Tray daemon is not running.")
		return nil
	}

	uptime := time.Since(info.StartedAt).Truncate(time.Second)
	mode := "tray"
	if info.Foreground {
		mode = "foreground"
	}

	fmt.Println("Tray daemon is running.")
	fmt.Printf("  %s %d\n", styleLabel.Render("PID"), info.PID)
	fmt.Printf("  %s %s\n", styleLabel.Render("Mode"), mode)
	fmt.Printf("  %s %s\n", styleLabel.Render("Uptime"), uptime)
	fmt.Printf("  %s %s\n", styleLabel.Render("Instance"), styleHint.Render(info.InstanceID))
	return nil
}

func runTrayStop(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}

	if !running || info == nil {
		fmt.Println("Tray daemon is not running.")
		return nil
	}

	process, err := os.FindProcess(info.PID)
	if err != nil {
		return fmt.Errorf("failed to find daemon process: %w", err)
	}

	// SIGTERM is not deliverable on Windows; fall back to killing the process.
	if err := process.Signal(syscall.SIGTERM); err != nil {
		if killErr := process.Kill(); killErr != nil {
			return fmt.Errorf("failed to send stop signal: %w", err)
		}
	}

	for i := 0; i < waitSteps; i++ {
		time.Sleep(waitStep)
		stillRunning, _, err := config.IsDaemonRunning()
		if err == nil && !stillRunning {
			fmt.Println("Tray daemon stopped.")
			return nil
		}
	}

	return fmt.Errorf("tray daemon did not stop within timeout (PID %d)", info.PID)
}

// startDaemon starts the daemon process in the background and waits for it
// to register itself.
func startDaemon() error {
	daemonPath, err := findDaemonBinary()
	if err != nil {
		return err
	}

	cmd := exec.Command(daemonPath)
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start daemon: %w", err)
	}
	go func() { _ = cmd.Wait() }()

	for i := 0; i < waitSteps; i++ {
		time.Sleep(waitStep)
		running, _, err := config.IsDaemonRunning()
		if err == nil && running {
			return nil
		}
	}

	return fmt.Errorf("daemon failed to start within timeout")
}

// findDaemonBinary locates the diskspaced binary.
func findDaemonBinary() (string, error) {
	if path, err := exec.LookPath(daemonBinary); err == nil {
		return path, nil
	}

	// Try next to the current executable
	if execPath, err := os.Executable(); err == nil {
		ext := filepath.Ext(execPath)
		candidate := filepath.Join(filepath.Dir(execPath), daemonBinary+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	candidate := filepath.Join("build", daemonBinary)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}

	return "", fmt.Errorf("%s not found. Install or build it first", daemonBinary)
}
