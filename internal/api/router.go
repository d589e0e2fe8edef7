// Package api wires the activity registry to its HTTP surface.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/config"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/logger"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/common/observability"
	"github.com/anastasiia-melnyk-softserve/skills-getting-started-with-github-copilot/internal/registry"
)

// NewRouter builds the gin engine with all API and operational routes.
func NewRouter(cfg *config.Config, reg *registry.Registry, log logger.Logger, obs *observability.Observability) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(log))

	h := NewHandler(reg, log, obs, cfg.Server.StaticDir)

	router.GET("/", h.Root)
	router.GET("/static/*filepath", h.Static)
	router.HEAD("/static/*filepath", h.Static)

	router.GET("/activities", h.ListActivities)
	router.POST("/activities/:name/signup", h.Signup)
	router.DELETE("/activities/:name/unregister", h.Unregister)

	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
