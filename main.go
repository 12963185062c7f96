package main

import (
	"log"
	"os"
	"s3fetch/cmd"
	"s3fetch/config"
	"s3fetch/internal/logging"
)

func main() {
	cnf, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration " + err.Error())
	}

	logger, closeLog, err := logging.New(cnf.LogFile)
	if err != nil {
		log.Fatalf("Failed to set up logging " + err.Error())
	}
	defer closeLog()

	if err := cmd.Execute(cnf, logger); err != nil {
		logger.Error("Failed to execute command", "error", err)
		os.Exit(1)
	}
}
