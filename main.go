package main

import (
	"log"
	"os"
	"time"

	"github.com/Somansh-Bodapati/Asset-Manager/cmd"
	"github.com/Somansh-Bodapati/Asset-Manager/internal/core/container"
	"github.com/Somansh-Bodapati/Asset-Manager/internal/core/logger"
	"github.com/Somansh-Bodapati/Asset-Manager/internal/core/routes"
	"github.com/Somansh-Bodapati/Asset-Manager/internal/database"
	"github.com/Somansh-Bodapati/Asset-Manager/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute()
}

func main() {
	zapLog := logger.NewLogger()
	defer zapLog.Sync()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		zapLog.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		zapLog.Fatal("failed to connect to the database", zap.Error(err))
	}
	defer db.Close()

	zapLog.Info("connected to the database")

	if err := database.RunMigrations("migrations", zapLog); err != nil {
		zapLog.Fatal("failed to run migrations", zap.Error(err))
	}

	middleware.MonitorDatabase(db, 30*time.Second)

	appContainer := container.NewAppContainer(db, zapLog)

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.TimeoutMiddleware(30 * time.Second))
	router.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter(300, time.Minute)))

	routes.RegisterRoutes(router, appContainer)
	routes.RegisterUtilityRoutes(router)

	if err := router.Run(os.Getenv("APP_HOST")); err != nil {
		zapLog.Fatal("server stopped", zap.Error(err))
	}
}
