package main

import (
	"os"

	"github.com/AlinaLB/celfie-lock/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
