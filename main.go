package main

import (
	"os"

	"github.com/afaq-ahmed07/ai-dubbing-system/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
