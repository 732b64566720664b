package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/fundtable/internal/service"
)

// Register mounts all public routes on the given engine: probes, the JSON API and the HTML UI.
func Register(r *gin.Engine, upstream Pinger, tables service.TableService, logger zerolog.Logger) {
	h := NewHealthHandler(upstream)

	r.Use(RequestID(), RequestLogger(logger))

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	NewWebHandler(tables).Register(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewTableHandler(tables).Register(api)
	}
}
