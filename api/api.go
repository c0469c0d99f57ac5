package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"riderequest/api/handler"
	"riderequest/pkg/logger"
	"riderequest/service"
)

// New builds the gateway router. Gin mode is left to the caller.
func New(svc service.IServiceManager, log logger.ILogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(requestLogger(log))
	r.Use(cors())

	h := handler.New(svc, log)

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/ride-request", h.CreateRideRequest)
		api.GET("/ride-requests", h.GetRideRequests)
	}

	return r
}
