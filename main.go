package main

import (
	"log/slog"
	"os"

	"movie-review-app/config"
	"movie-review-app/database"
	"movie-review-app/internal/domain/movies"
	"movie-review-app/logger"

	routes "movie-review-app/internal/app/http"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	logger.Init(config.LOG_LEVEL)

	db, err := database.Open(config.DB_DRIVER, config.DSN(), config.DB_POOL_SIZE)
	if err != nil {
		slog.Error("failed to connect to database", "driver", config.DB_DRIVER, "err", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if config.DB_AUTO_MIGRATE {
		if err := database.Migrate(db); err != nil {
			slog.Error("migration failed", "err", err)
			os.Exit(1)
		}
	}

	store := movies.NewStore(db)
	r := routes.NewRouter(store, config.CORS_ORIGIN)

	slog.Info("API listening", "addr", "http://localhost:"+config.PORT, "pool_size", config.DB_POOL_SIZE)
	if err := r.Run(":" + config.PORT); err != nil {
		slog.Error("server stopped", "err", err)
	}
}
