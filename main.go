package main

import (
	"fmt"

	"github.com/smsflow/attentive-adapter/api"
	"github.com/smsflow/attentive-adapter/services/monitoring/logging"
	"github.com/smsflow/attentive-adapter/utils"
)

var envPath string = "."

func main() {

	config, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	logger := logging.NewLogger(config.LogLevel)

	server := api.NewServer(config, logger)
	if err := server.Start(config.ServerPort); err != nil {
		panic(fmt.Sprintf("Server stopped: %v", err))
	}
}
