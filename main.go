package main

import (
	"os"

	"github.com/quizmith/quizmith/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
