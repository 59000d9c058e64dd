package main

import (
	"os"

	"github.com/arwahscan/arwahscan/cmd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}