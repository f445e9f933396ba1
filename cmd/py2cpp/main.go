package main

import (
	"os"

	"github.com/mugwort-rc/py2cpp/cmd/py2cpp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
