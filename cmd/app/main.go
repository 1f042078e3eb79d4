package main

import (
	"github.com/yamanfurkan353-eng/lumina/config"
	"github.com/yamanfurkan353-eng/lumina/di"
	"github.com/yamanfurkan353-eng/lumina/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
