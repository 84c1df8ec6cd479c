package main

import (
	"os"

	"github.com/hieple7985/hip-key/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
