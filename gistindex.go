package main

import (
	"fmt"
	"os"

	"github.com/thomiceli/gistindex/internal/cli"
)

func main() {
	if err := cli.App(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
