package main

import (
	"fmt"
	"os"

	"github.com/wingworks/catering-configurator-backend/internal/cli"
	"github.com/wingworks/catering-configurator-backend/internal/config"
)

func main() {
	flags := cli.ParseServeFlags()
	cfg := config.LoadOrEnvWithPath(flags.ConfigFile)

	if err := cli.RunServe(cfg, flags); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
