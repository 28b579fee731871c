package main

import (
	"os"

	"github.com/kbukum/numkit/cmd/numkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
