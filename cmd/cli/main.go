// Package main is the entry point for the pricesim CLI.
package main

import (
	"os"

	"pricing-simulator/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
