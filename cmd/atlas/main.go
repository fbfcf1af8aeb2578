// Package main provides the atlas CLI.
package main

import (
	"os"

	"github.com/mesh-intelligence/atlas/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]))
}
