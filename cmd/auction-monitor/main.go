// Package main is the entry point for the auction-monitor CLI.
package main

import (
	"os"

	"github.com/donaldgifford/auction-monitor/cmd/auction-monitor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
