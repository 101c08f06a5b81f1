package main

import (
	"os"

	"github.com/dshills/playlint/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
