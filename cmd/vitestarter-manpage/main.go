package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/vitestarter/vitestarter/internal/cli"
	"github.com/vitestarter/vitestarter/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "VITESTARTER",
		Section: "1",
		Source:  "vitestarter " + version.Version,
		Manual:  "vitestarter manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
