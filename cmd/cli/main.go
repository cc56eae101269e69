package main

import (
	"os"

	"github.com/biogleam/biogleam/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
