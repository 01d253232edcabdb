// Package config loads the relay's process-wide settings from the environment.
//
// The result is built once at startup and handed to the components that need
// it. Nothing in the request path reads the environment directly.
package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultBirdeyeBaseURL is the production Birdeye API host.
	DefaultBirdeyeBaseURL = "https://api.birdeye.com"

	// locationKeyPrefix marks a per-location business ID, for example
	// BIRDEYE_BUSINESS_ID_BIRMINGHAM.
	locationKeyPrefix = "birdeye_business_id_"
)

// Config holds all application configuration values
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	AllowedOrigin   string
	ShutdownTimeout time.Duration
	Birdeye         BirdeyeConfig
}

// BirdeyeConfig holds the provider credentials and endpoint settings.
//
// Credentials may be empty; a missing API key or business ID is reported per
// request rather than at startup.
type BirdeyeConfig struct {
	APIKey     string
	BusinessID string
	// Locations maps a normalized location label to its business ID. When
	// it is non-empty the relay runs in multi-location mode.
	Locations map[string]string
	BaseURL   string
	// Timeout of zero leaves the outbound call bounded only by the
	// inbound request context.
	Timeout time.Duration
}

// IsProduction reports whether the relay runs with production defaults.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LocationLabels returns the recognized location labels in sorted order.
func (b BirdeyeConfig) LocationLabels() []string {
	labels := make([]string, 0, len(b.Locations))
	for label := range b.Locations {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// NormalizeLocation folds a location label into its lookup key.
func NormalizeLocation(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// rawConfig mirrors the environment one-to-one.
type rawConfig struct {
	Port              string        `koanf:"port" validate:"required,numeric"`
	AppEnv            string        `koanf:"app_env" validate:"oneof=development production test"`
	LogLevel          string        `koanf:"log_level" validate:"oneof=trace debug info warn error disabled"`
	AllowedOrigin     string        `koanf:"allowed_origin"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"gt=0s"`
	BirdeyeAPIKey     string        `koanf:"birdeye_api_key"`
	BirdeyeBusinessID string        `koanf:"birdeye_business_id"`
	BirdeyeLocations  string        `koanf:"birdeye_locations"`
	BirdeyeBaseURL    string        `koanf:"birdeye_base_url" validate:"required,url"`
	BirdeyeTimeout    time.Duration `koanf:"birdeye_timeout" validate:"gte=0s"`
}

var knownKeys = map[string]struct{}{
	"port":                {},
	"app_env":             {},
	"log_level":           {},
	"allowed_origin":      {},
	"shutdown_timeout":    {},
	"birdeye_api_key":     {},
	"birdeye_business_id": {},
	"birdeye_locations":   {},
	"birdeye_base_url":    {},
	"birdeye_timeout":     {},
}

var defaults = map[string]string{
	"port":             "8080",
	"app_env":          "production",
	"log_level":        "info",
	"allowed_origin":   "*",
	"shutdown_timeout": "10s",
	"birdeye_base_url": DefaultBirdeyeBaseURL,
	"birdeye_timeout":  "0s",
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	for key, val := range defaults {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	err := k.Load(env.Provider("", ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var raw rawConfig
	if err := k.Unmarshal("", &raw); err != nil {
		return nil, fmt.Errorf("decoding environment: %w", err)
	}

	if err := validator.New().Struct(raw); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	locations, err := parseLocationList(raw.BirdeyeLocations)
	if err != nil {
		return nil, err
	}
	for key, val := range k.All() {
		if !strings.HasPrefix(key, locationKeyPrefix) {
			continue
		}
		id, _ := val.(string)
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		label := strings.ReplaceAll(strings.TrimPrefix(key, locationKeyPrefix), "_", " ")
		locations[NormalizeLocation(label)] = id
	}

	origin := strings.TrimSpace(raw.AllowedOrigin)
	if origin == "" {
		origin = "*"
	}

	return &Config{
		Port:            raw.Port,
		Env:             raw.AppEnv,
		LogLevel:        raw.LogLevel,
		AllowedOrigin:   origin,
		ShutdownTimeout: raw.ShutdownTimeout,
		Birdeye: BirdeyeConfig{
			APIKey:     strings.TrimSpace(raw.BirdeyeAPIKey),
			BusinessID: strings.TrimSpace(raw.BirdeyeBusinessID),
			Locations:  locations,
			BaseURL:    strings.TrimRight(raw.BirdeyeBaseURL, "/"),
			Timeout:    raw.BirdeyeTimeout,
		},
	}, nil
}

// envKey maps an environment variable name to a koanf key, dropping
// anything the relay does not read.
func envKey(s string) string {
	key := strings.ToLower(s)
	if _, ok := knownKeys[key]; ok {
		return key
	}
	if strings.HasPrefix(key, locationKeyPrefix) {
		return key
	}
	return ""
}

// parseLocationList parses "Birmingham=123,North Port=456".
func parseLocationList(s string) (map[string]string, error) {
	locations := make(map[string]string)
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		label, id, ok := strings.Cut(entry, "=")
		label = NormalizeLocation(label)
		id = strings.TrimSpace(id)
		if !ok || label == "" || id == "" {
			return nil, fmt.Errorf("invalid BIRDEYE_LOCATIONS entry %q: want label=id", entry)
		}
		locations[label] = id
	}
	return locations, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
