package main

import (
	"os"

	"github.com/msto63/iadate/cmd/iadate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
