// Package launcher starts external programs from tray menu actions without
// waiting for them.
package launcher

import (
	"fmt"
	"log"
	"os/exec"
	"strings"

	"github.com/diskspace-io/diskspace/internal/models"
)

// LaunchError reports that an external program could not be started.
type LaunchError struct {
	Command string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Launch starts cfg and returns once the process is running. The child is
// reaped in the background; its exit status is only logged.
func Launch(cfg models.LaunchConfig) error {
	if cfg.Command == "" {
		return &LaunchError{Command: "<empty>", Err: fmt.Errorf("no command configured")}
	}

	cmd := exec.Command(cfg.Command, cfg.Args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	hideWindow(cmd)

	if err := cmd.Start(); err != nil {
		return &LaunchError{Command: describe(cfg), Err: err}
	}

	log.Printf("[launcher] Started %s (PID %d)", describe(cfg), cmd.Process.Pid)
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Printf("[launcher] %s exited: %v", cfg.Command, err)
		}
	}()
	return nil
}

// LaunchAll starts every command in order, stopping at the first failure.
func LaunchAll(cfgs []models.LaunchConfig) error {
	for _, cfg := range cfgs {
		if err := Launch(cfg); err != nil {
			return err
		}
	}
	return nil
}

func describe(cfg models.LaunchConfig) string {
	if len(cfg.Args) == 0 {
		return cfg.Command
	}
	return cfg.Command + " " + strings.Join(cfg.Args, " ")
}
