package main

import (
	"link/config"
	"link/di"
	"link/shared/logger"
	"link/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.Init(cfg)

	http := di.InitializeService()
	http.Serve()
}
