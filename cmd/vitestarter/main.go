package main

import (
	"os"

	"github.com/vitestarter/vitestarter/internal/cli"
	"github.com/vitestarter/vitestarter/pkg/output"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output.NewPrinter(os.Stderr, os.Stderr, output.FormatAuto).Error(err)
		os.Exit(1)
	}
}
