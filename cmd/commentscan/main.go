// Package main provides the commentscan CLI.
package main

import (
	"os"

	"github.com/tidemark-labs/commentscan/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
