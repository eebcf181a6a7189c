package main

import (
	"os"

	"github.com/hmaeda/campdoc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
