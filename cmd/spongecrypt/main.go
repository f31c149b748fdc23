package main

import (
	"os"

	"spongecrypt/cmd/spongecrypt/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
