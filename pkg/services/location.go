package services

import (
	"birdeye-relay/pkg/config"
	"birdeye-relay/pkg/errs"
)

// LocationResolver maps a location label to a Birdeye business ID.
type LocationResolver struct {
	defaultID string
	locations map[string]string
	allowed   []string
}

// NewLocationResolver builds a resolver from the provider configuration.
func NewLocationResolver(cfg config.BirdeyeConfig) *LocationResolver {
	normalized := config.BirdeyeConfig{Locations: make(map[string]string, len(cfg.Locations))}
	for label, id := range cfg.Locations {
		normalized.Locations[config.NormalizeLocation(label)] = id
	}
	return &LocationResolver{
		defaultID: cfg.BusinessID,
		locations: normalized.Locations,
		allowed:   normalized.LocationLabels(),
	}
}

// MultiLocation reports whether business IDs are keyed by location.
func (r *LocationResolver) MultiLocation() bool {
	return len(r.locations) > 0
}

// Allowed returns the recognized labels, sorted.
func (r *LocationResolver) Allowed() []string {
	out := make([]string, len(r.allowed))
	copy(out, r.allowed)
	return out
}

// Resolve returns the business ID for label. Single-location deployments
// ignore label and use the configured ID.
func (r *LocationResolver) Resolve(label string) (string, error) {
	if !r.MultiLocation() {
		if r.defaultID == "" {
			return "", errs.Configuration("Server not configured: missing BIRDEYE_BUSINESS_ID")
		}
		return r.defaultID, nil
	}

	if id, ok := r.locations[config.NormalizeLocation(label)]; ok && id != "" {
		return id, nil
	}
	return "", errs.InvalidLocation(r.Allowed())
}
