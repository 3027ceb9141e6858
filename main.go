package main

import (
	"os"

	"github.com/miix-automations/website/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
