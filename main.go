package main

import (
	"os"

	"github.com/gridguard/landing/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
