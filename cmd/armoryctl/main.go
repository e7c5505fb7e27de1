package main

import (
	"os"

	"github.com/osse101/Armory_Go/cmd/armoryctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
