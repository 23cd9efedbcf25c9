package main

import (
	"fmt"
	"os"

	"github.com/zkcost/proof-cost-planner/internal/cli"
	"github.com/zkcost/proof-cost-planner/internal/config"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading configuration: %v\n", err)
		os.Exit(1)
	}

	command := cli.NewCmdRoot(cfg)
	if err := command.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
