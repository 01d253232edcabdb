package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"birdeye-relay/pkg/errs"
	"birdeye-relay/pkg/metrics"
	"birdeye-relay/pkg/middleware"
	"birdeye-relay/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	contactService services.ContactService
	metrics        *metrics.Recorder
	logger         zerolog.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(contactService services.ContactService, recorder *metrics.Recorder, logger zerolog.Logger) *Handlers {
	return &Handlers{
		contactService: contactService,
		metrics:        recorder,
		logger:         logger,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// NotFound answers unknown routes with a JSON body.
func (h *Handlers) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": http.StatusText(http.StatusNotFound)})
}

// HandleContactSubmission relays a contact form submission to Birdeye
func (h *Handlers) HandleContactSubmission(c *gin.Context) {
	req, err := decodeRequest(c.Request)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if req.Preflight {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	result, err := h.contactService.SubmitContact(c.Request.Context(), req.Fields)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.metrics.ObserveSubmission("success")
	c.Data(result.Status, "application/json", result.Body)
}

func (h *Handlers) respondError(c *gin.Context, err error) {
	e := errs.From(err)
	h.metrics.ObserveSubmission(e.Kind.String())
	_ = c.Error(err)

	if e.Kind == errs.KindServer || e.Kind == errs.KindConfiguration {
		h.logger.Error().
			Str("request_id", middleware.GetRequestID(c)).
			Str("kind", e.Kind.String()).
			Msg(e.Message)
	}

	c.JSON(e.HTTPStatus(), e.Body())
}
