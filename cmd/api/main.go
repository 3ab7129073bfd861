package main

import (
	"log"

	"launchpad/cmd"
	"launchpad/internal/logger"
)

func main() {
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	logger.New().Infof("launchpad api listening on :%d, docs at /docs", apiHandler.Port)
	if err := apiHandler.StartApi(apiHandler.Port); err != nil {
		log.Fatal(err)
	}
}
