package handler

import (
	"net/http"

	"github.com/yamanfurkan353-eng/lumina/config"
	"github.com/yamanfurkan353-eng/lumina/di"
	"github.com/yamanfurkan353-eng/lumina/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
