// Package main is the entry point for the souqctl CLI.
package main

import "github.com/souqly/souqly/cmd/souqctl/cmd"

func main() {
	cmd.Execute()
}
