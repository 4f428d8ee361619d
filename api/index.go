package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"abc-retail/config"
	"abc-retail/models"
	"abc-retail/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	router  *gin.Engine
	initErr error
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.LoadConfig()
		config.InitLogger("production", "")

		app, err := routes.Connect(context.Background(), cfg)
		if err != nil {
			initErr = err
			zap.S().Errorf("application init failed: %v", err)
			return
		}

		router = routes.NewRouter(app)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Success: false, Message: "Service unavailable"})
		return
	}
	router.ServeHTTP(w, r)
}
