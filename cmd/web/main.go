package main

import (
	"log/slog"
	"net/http"

	"movie-review-app/config"
	"movie-review-app/internal/frontend"
	"movie-review-app/logger"
)

func main() {
	config.LoadEnv()
	logger.Init(config.LOG_LEVEL)

	api := frontend.NewAPIClient(config.PUBLIC_API_HOST, &http.Client{})
	r := frontend.NewRouter(api)

	slog.Info("web listening", "addr", "http://localhost:"+config.WEB_PORT, "api", config.PUBLIC_API_HOST)
	if err := r.Run(":" + config.WEB_PORT); err != nil {
		slog.Error("server stopped", "err", err)
	}
}
