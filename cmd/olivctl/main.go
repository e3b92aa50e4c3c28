// Package main is the olivctl entry point.
package main

import (
	"os"

	"github.com/olivos-dev/olivctl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
