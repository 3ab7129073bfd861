package main

import (
	"os"

	"launchpad/cmd"
	"launchpad/internal/logger"
)

func main() {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		logger.New().Fatal(err)
	}
	defer cmd.CloseDependencies(handler)

	root := newRootCmd(handler)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
