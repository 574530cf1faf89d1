// Package main provides the entry point for the shell-log CLI.
package main

import (
	"os"

	"github.com/Station-Manager/shell-logging/cmd/shell-log/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
