package main

import (
	"luxehotel/config"
	"luxehotel/di"
	"luxehotel/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
