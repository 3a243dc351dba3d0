// Package cmd implements the diskspaced command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/diskspace-io/diskspace/internal/buildinfo"
	"github.com/diskspace-io/diskspace/internal/config"
	"github.com/diskspace-io/diskspace/internal/daemon/alert"
	"github.com/diskspace-io/diskspace/internal/daemon/launcher"
	"github.com/diskspace-io/diskspace/internal/daemon/monitor"
	"github.com/diskspace-io/diskspace/internal/daemon/poller"
	"github.com/diskspace-io/diskspace/internal/daemon/tray"
	"github.com/diskspace-io/diskspace/internal/daemon/watcher"
	"github.com/diskspace-io/diskspace/internal/models"
)

var foreground bool

var rootCmd = &cobra.Command{
	Use:   "diskspaced",
	Short: "Warn from the system tray when a volume runs low on space",
	Long: `diskspaced checks the configured volumes every two minutes and shows a
tray icon while any of them is below its free space or free inode floor.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDaemon,
}

func init() {
	rootCmd.Flags().BoolVar(&foreground, "foreground", false, "Run in foreground without a tray icon, logging state changes")
}

// Execute runs the daemon command line.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Printf("Error: %v", err)
	}
	return err
}

func runDaemon(cmd *cobra.Command, args []string) error {
	setupLogging(foreground)
	log.Printf("diskspaced %s", buildinfo.Summary())

	running, info, err := config.IsDaemonRunning()
	if err != nil {
		return fmt.Errorf("failed to check daemon status: %w", err)
	}
	if running {
		return fmt.Errorf("daemon already running (PID %d)", info.PID)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if foreground {
		log.Println("Running in foreground mode (no system tray)")
		return runForeground(settings)
	}
	log.Println("Running in background mode (with system tray)")
	runWithTray(settings)
	return nil
}

// setupLogging mirrors log output into the state dir when running with a tray,
// where there may be no console.
func setupLogging(foreground bool) {
	log.SetPrefix("[diskspaced] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if foreground {
		return
	}
	if err := config.EnsureStateDir(); err != nil {
		log.Printf("Failed to create state directory: %v", err)
		return
	}
	path, err := config.LogFile()
	if err != nil {
		log.Printf("Failed to resolve log file: %v", err)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Failed to open log file: %v", err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
}

func registerInstance(fg bool) {
	info := models.NewDaemonInfo(os.Getpid(), fg)
	if err := config.SaveDaemonInfo(info); err != nil {
		log.Fatalf("Failed to write daemon info: %v", err)
	}
	log.Printf("Daemon started (PID %d, instance %s)", info.PID, info.InstanceID)
}

func unregisterInstance() {
	if err := config.RemoveDaemonInfo(); err != nil {
		log.Printf("Failed to remove daemon info: %v", err)
	}
}

// runForeground runs without a tray, logging every redraw until a signal
// arrives or polling fails.
func runForeground(settings *models.Settings) error {
	volumes := settings.Volumes
	m := monitor.New(settings, volumes, nil)
	registerInstance(true)
	defer unregisterInstance()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- m.Poller.Run(ctx)
	}()

	log.Printf("Monitoring %d volume(s) every %s", len(volumes), poller.DefaultInterval)
	for {
		select {
		case <-ctx.Done():
			log.Println("Received signal, shutting down...")
			fmt.Println("Daemon stopped")
			return nil
		case err := <-errCh:
			if err != nil {
				return err
			}
			return nil
		case <-m.Signal.C():
			snap := m.Store.Read()
			if snap.Empty() {
				log.Println("All volumes above thresholds")
			} else {
				log.Printf("Low disk space: %s", tray.Tooltip(snap))
			}
		}
	}
}

// runWithTray runs the tray on the main goroutine.
// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
func runWithTray(settings *models.Settings) {
	m := monitor.New(settings, settings.TrayVolumes(), nil)
	escalator := alert.New(nil)
	ctx, cancel := context.WithCancel(context.Background())

	var settingsWatcher *watcher.Watcher
	var settingsChanged <-chan struct{}
	if path, err := config.SettingsFile(); err == nil {
		if w, err := watcher.New(path); err == nil {
			settingsWatcher = w
			settingsChanged = w.Changes()
		} else {
			log.Printf("Warning: failed to watch settings: %v", err)
		}
	}

	var cleanup func() error
	if len(settings.Tray.Cleanup) > 0 {
		cleanup = func() error { return launcher.LaunchAll(settings.Tray.Cleanup) }
	}

	onStart := func() {
		registerInstance(false)

		// Poll in the background; a probe error stops monitoring for good.
		go func() {
			_ = m.Maintain(ctx, escalator)
		}()

		// Quit the tray on SIGINT/SIGTERM
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			log.Printf("Received signal %v, shutting down...", sig)
			tray.Quit()
		}()
	}

	onExit := func() {
		cancel()
		if settingsWatcher != nil {
			settingsWatcher.Stop()
		}
		unregisterInstance()
		fmt.Println("Daemon stopped")
	}

	// This blocks the main goroutine until tray exits.
	tray.Run(tray.Options{
		Store:           m.Store,
		Signal:          m.Signal,
		Escalator:       escalator,
		Analyzer:        func() error { return launcher.Launch(settings.Tray.Analyzer) },
		Cleanup:         cleanup,
		SettingsChanged: settingsChanged,
		OnStart:         onStart,
		OnExit:          onExit,
	})
}
