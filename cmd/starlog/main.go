// Package main is the entry point for the starlog CLI.
package main

import (
	"os"

	"github.com/iuga/starlog/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
