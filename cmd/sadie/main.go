// Package main is the entry point for the sadie editor.
package main

import (
	"os"

	"github.com/dshills/sadie/internal/cli"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(cli.Execute(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}, os.Args[1:], os.Stderr))
}
