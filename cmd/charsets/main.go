package main

import (
	"os"

	"github.com/reoring/charsets/cmd/charsets/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
