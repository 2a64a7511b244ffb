package main

import (
	"os"

	"github.com/vocabdrill/vocabdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
