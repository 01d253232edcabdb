package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"birdeye-relay/pkg/clients/birdeye"
	"birdeye-relay/pkg/config"
	"birdeye-relay/pkg/errs"
	"birdeye-relay/pkg/metrics"
	"birdeye-relay/pkg/models"
	"birdeye-relay/pkg/utils"
)

// emptyJSONObject replaces an empty upstream success body.
var emptyJSONObject = []byte("{}")

// ContactService defines the interface for relaying contact form submissions
type ContactService interface {
	SubmitContact(ctx context.Context, fields map[string]any) (*ContactResult, error)
}

// ContactResult is the upstream success reply relayed to the caller.
type ContactResult struct {
	Status int
	Body   []byte
}

type contactServiceImpl struct {
	birdeyeClient birdeye.Client
	apiKey        string
	locations     *LocationResolver
	metrics       *metrics.Recorder
	logger        zerolog.Logger
}

// NewContactService creates a new contact relay service
func NewContactService(
	birdeyeClient birdeye.Client,
	cfg config.BirdeyeConfig,
	recorder *metrics.Recorder,
	logger zerolog.Logger,
) ContactService {
	return &contactServiceImpl{
		birdeyeClient: birdeyeClient,
		apiKey:        cfg.APIKey,
		locations:     NewLocationResolver(cfg),
		metrics:       recorder,
		logger:        logger.With().Str("component", "contact").Logger(),
	}
}

// SubmitContact validates the submission, resolves its business ID and
// forwards it to Birdeye exactly once. Every returned error is an *errs.Error.
func (s *contactServiceImpl) SubmitContact(ctx context.Context, fields map[string]any) (result *ContactResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, errs.Server(fmt.Sprint(r))
		}
	}()

	contact, err := NormalizeContact(ParseContactForm(fields))
	if err != nil {
		return nil, err
	}

	log := s.logger.With().
		Str("phone_hash", utils.Fingerprint(contact.Phone)).
		Str("email", utils.MaskEmail(contact.Email)).
		Str("location", contact.Location).
		Logger()

	businessID, err := s.locations.Resolve(contact.Location)
	if err != nil {
		log.Warn().Err(err).Msg("Could not resolve business ID")
		return nil, err
	}

	if s.apiKey == "" {
		return nil, errs.Configuration("Server not configured: missing BIRDEYE_API_KEY")
	}

	log.Info().Str("business_id", businessID).Msg("Forwarding contact submission")

	start := time.Now()
	resp, err := s.birdeyeClient.SubmitContact(ctx, businessID, buildPayload(contact))
	if err != nil {
		s.metrics.ObserveUpstream(0, time.Since(start))
		log.Error().Err(err).Msg("Error with Birdeye API")
		return nil, errs.Server(err.Error())
	}
	s.metrics.ObserveUpstream(resp.StatusCode, time.Since(start))

	if !resp.OK() {
		log.Warn().Int("status", resp.StatusCode).Msg("Birdeye rejected submission")
		return nil, errs.Upstream(resp.StatusCode, parseDetails(resp.Body))
	}

	body := resp.Body
	if len(body) == 0 {
		body = emptyJSONObject
	}

	log.Info().Int("status", resp.StatusCode).Msg("Contact submission accepted")
	return &ContactResult{Status: http.StatusOK, Body: body}, nil
}

func buildPayload(c models.NormalizedContact) birdeye.ContactUsPayload {
	return birdeye.ContactUsPayload{
		CustomerComment: c.Comment,
		Customer: birdeye.Customer{
			Name:        c.Name,
			EmailID:     c.Email,
			Phone:       c.Phone,
			PhoneNumber: c.Phone,
			Mobile:      c.Phone,
		},
		AdditionalParams: birdeye.AdditionalParams{
			Channel:     c.Channel,
			UTMCampaign: c.Campaign,
			Location:    c.Location,
		},
	}
}

// parseDetails returns body as decoded JSON, or as text when it is not JSON.
func parseDetails(body []byte) any {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}
