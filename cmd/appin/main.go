package main

import (
	"os"

	"appin/internal/cli"
	"appin/internal/report"
)

func main() {
	if err := cli.Execute(); err != nil {
		report.Errorf("%v", err)
		os.Exit(1)
	}
}
