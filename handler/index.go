package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var engine = newEngine()

func newEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "ABC Retail API",
			"path":    c.Request.URL.Path,
		})
	})
	return r
}

func Handler(w http.ResponseWriter, r *http.Request) {
	engine.ServeHTTP(w, r)
}
