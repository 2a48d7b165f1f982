package main

import (
	"os"

	"github.com/captionkit/captionkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
