// README: HTTP router registration (gin).
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"wayfarer/internal/http/handlers"
	"wayfarer/internal/http/middleware"
	"wayfarer/internal/metrics"
	"wayfarer/internal/modules/hazard"
	"wayfarer/internal/modules/planner"
)

type RouterDeps struct {
	Planner *planner.Service
	Hazard  *hazard.Service
	Logger  zerolog.Logger
	Metrics *metrics.Metrics
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.Recovery(d.Logger),
		middleware.Logging(d.Logger),
		middleware.Metrics(d.Metrics),
	)

	tripHandler := handlers.NewTripHandler(d.Planner)
	r.POST("/api/trips/plan", tripHandler.Plan)

	hazardHandler := handlers.NewHazardHandler(d.Hazard)
	r.POST("/api/hazards/report", hazardHandler.Report)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
