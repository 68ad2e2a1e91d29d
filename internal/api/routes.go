package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Kamar-Folarin/github-signals/docs"
)

// RouterOptions holds the optional collaborators of the router
type RouterOptions struct {
	// Observer receives per-route request metrics
	Observer HTTPObserver
	// Metrics serves /metrics when set
	Metrics http.Handler
}

// @title GitHub Signals API
// @version 1.0
// @description Recruiter-facing signals derived from a user's public GitHub activity
// @contact.name API Support
// @contact.url http://github.com/Kamar-Folarin
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /
// @schemes http https

// SetupRouter configures the API routes and middleware
func SetupRouter(h *Handler, logger *logrus.Logger, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(logger, opts.Observer))

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics))
	}

	r.GET("/health", h.Health)
	r.GET("/analyze", h.Analyze)
	r.GET("/languages", h.Languages)
	r.GET("/community", h.Community)
	r.GET("/vitality", h.Vitality)
	r.GET("/activity", h.Activity)

	return r
}
