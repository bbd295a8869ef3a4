package main

import (
	"os"

	"github.com/Christiancoding/New-Linux-Practice-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
