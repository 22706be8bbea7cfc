package main

import (
	"os"

	"github.com/arthur-debert/wort/internal/cli"
	"github.com/arthur-debert/wort/pkg/report"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		report.RenderError(os.Stderr, err)
		os.Exit(1)
	}
}
