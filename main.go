package main

import (
	"os"

	"github.com/ThomasCrouzet/kompose/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
