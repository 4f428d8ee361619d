package main

import (
	"context"

	"abc-retail/config"
	_ "abc-retail/docs"
	"abc-retail/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title ABC Retail API
// @version 1.0
// @description Storefront and back office for ABC Retail
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.LoadConfig()

	logger := config.InitLogger(cfg.LogMode, cfg.LogFile)
	defer logger.Sync()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	app, err := routes.Connect(context.Background(), cfg)
	if err != nil {
		zap.S().Fatalf("Failed to start application: %v", err)
	}
	defer app.Close()

	router := routes.NewRouter(app)

	port := ":" + cfg.Port
	zap.S().Infof("Server starting on port %s", port)
	zap.S().Infof("Environment: %s", cfg.AppEnv)
	zap.S().Infof("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(port); err != nil {
		zap.S().Fatalf("Failed to start server: %v", err)
	}
}
