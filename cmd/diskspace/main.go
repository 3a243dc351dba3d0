// Package main is the entry point for the diskspace CLI.
package main

import (
	"os"

	"github.com/diskspace-io/diskspace/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
