package main

import (
	"os"

	"github.com/msto63/lu/cmd/lu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
