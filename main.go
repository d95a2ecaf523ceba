package main

import (
	"os"

	"github.com/traPtitech/identicon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
