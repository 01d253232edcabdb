package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"birdeye-relay/pkg/middleware"
)

// ContactPaths are the routes the website may post to.
var ContactPaths = []string{
	"/",
	"/birdeye-contact",
	"/.netlify/functions/birdeye-contact",
}

// NewRouter wires middleware and routes. metricsHandler may be nil.
func NewRouter(h *Handlers, allowedOrigin string, metricsHandler http.Handler, logger zerolog.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.CORS(allowedOrigin),
		middleware.Recovery(logger),
	)

	for _, path := range ContactPaths {
		router.Any(path, h.HandleContactSubmission)
	}
	router.GET("/health", h.HealthCheck)
	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}
	router.NoRoute(h.NotFound)

	return router
}
