// Package main is the entry point for the diskspaced tray daemon.
package main

import (
	"os"

	"github.com/diskspace-io/diskspace/internal/daemon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
