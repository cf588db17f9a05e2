package main

import (
	"os"

	"github.com/avasquez/ppmon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
