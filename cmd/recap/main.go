package main

import (
	"os"

	"github.com/custodia-labs/recap-cli/internal/adapters/driving/cli"
)

// version is set by the release build.
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
