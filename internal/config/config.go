// Package config resolves the service configuration from defaults, an
// optional salesboard.yaml and SALESBOARD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/salesboard/salesboard/internal/chart"
)

// ErrBackendURLRequired is returned by Validate when no sales backend
// is configured and demo mode is off.
var ErrBackendURLRequired = errors.New("backend url is required outside demo mode")

// Config holds every runtime knob of the service.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string
	// BackendURL is the base URL of the sales backend.
	BackendURL string
	// DefaultShop is used by the dashboard page when the request
	// carries no shop parameter.
	DefaultShop string
	// FallbackCurrency labels revenue axes when a load reports none.
	FallbackCurrency string
	// RequestTimeout bounds each backend request.
	RequestTimeout time.Duration
	// RateLimitRPS and RateLimitBurst shape the per-client API limit.
	RateLimitRPS   float64
	RateLimitBurst int
	// Demo serves a synthetic sales backend in-process and points the
	// loader at it.
	Demo bool
}

// Load resolves the configuration. Environment variables win over the
// config file, which wins over defaults. A missing config file is
// fine; a malformed one is not.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("salesboard")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/salesboard")

	v.SetEnvPrefix("salesboard")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("backend_url", "")
	v.SetDefault("default_shop", "")
	v.SetDefault("fallback_currency", chart.FallbackCurrency)
	v.SetDefault("request_timeout", "10s")
	v.SetDefault("rate_limit.rps", 5)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("demo", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return Config{
		Addr:             v.GetString("addr"),
		BackendURL:       strings.TrimRight(v.GetString("backend_url"), "/"),
		DefaultShop:      v.GetString("default_shop"),
		FallbackCurrency: v.GetString("fallback_currency"),
		RequestTimeout:   v.GetDuration("request_timeout"),
		RateLimitRPS:     v.GetFloat64("rate_limit.rps"),
		RateLimitBurst:   v.GetInt("rate_limit.burst"),
		Demo:             v.GetBool("demo"),
	}, nil
}

// Validate checks the knobs that flags may still have overridden
// after Load.
func (c Config) Validate() error {
	if !c.Demo && c.BackendURL == "" {
		return ErrBackendURLRequired
	}
	return nil
}
