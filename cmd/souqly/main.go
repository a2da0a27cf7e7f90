// Package main is the entry point for the souqly server.
package main

import (
	"os"

	"github.com/souqly/souqly/cmd/souqly/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
