// Package router assembles the gin engine serving the site.
package router

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jacksonrr3/tutor-booking/internal/handler"
	"github.com/jacksonrr3/tutor-booking/internal/middleware"
	"github.com/jacksonrr3/tutor-booking/internal/service"
	"github.com/jacksonrr3/tutor-booking/pkg/logger"
	"github.com/jacksonrr3/tutor-booking/pkg/middleware/requestid"
	"github.com/jacksonrr3/tutor-booking/pkg/response"
)

// Handlers groups everything the engine routes to.
type Handlers struct {
	Catalog *handler.CatalogHandler
	Booking *handler.BookingHandler
	Request *handler.RequestHandler
	Metrics *handler.MetricsHandler
}

// New builds the engine with the middleware stack and every route.
func New(h Handlers, templates *template.Template, metrics *service.MetricsService, logr *zap.Logger) *gin.Engine {
	if logr == nil {
		logr = zap.NewNop()
	}

	r := gin.New()
	r.SetHTMLTemplate(templates)
	r.Use(response.Recovery(logr))
	r.Use(requestid.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)

	r.GET("/", h.Catalog.Index)
	r.GET("/all/", h.Catalog.All)
	r.POST("/all/", h.Catalog.All)
	r.GET("/goals/:goal/", h.Catalog.Goal)
	r.GET("/profiles/:id/", h.Catalog.Profile)

	r.GET("/request/", h.Request.Form)
	r.POST("/request/", h.Request.Submit)

	r.GET("/booking/:id/:day/:time/", h.Booking.Form)
	r.POST("/booking/:id/:day/:time/", h.Booking.Submit)

	r.NoRoute(response.NotFound)
	return r
}
