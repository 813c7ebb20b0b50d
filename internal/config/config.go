package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Amund211/notations/internal/notation"
)

var ErrMissingRequiredValue = errors.New("missing required value")
var ErrInvalidValue = errors.New("invalid value")

type environment string

const (
	production  environment = "production"
	staging     environment = "staging"
	development environment = "development"
)

const defaultPlaces = 2

type Config struct {
	sentryDSN      string
	otelEnabled    bool
	notation       notation.ID
	places         int
	displayOptions notation.Options
	env            environment
}

func (c *Config) SentryDSN() string {
	return c.sentryDSN
}

func (c *Config) OTelEnabled() bool {
	return c.otelEnabled
}

// Notation is the notation used when the caller does not pick one
func (c *Config) Notation() notation.ID {
	return c.notation
}

// Places is the default number of decimal places for values above 1000
func (c *Config) Places() int {
	return c.places
}

func (c *Config) DisplayOptions() notation.Options {
	return c.displayOptions
}

func (c *Config) Environment() string {
	return string(c.env)
}

func (c *Config) IsProduction() bool {
	return c.env == production
}

func (c *Config) IsStaging() bool {
	return c.env == staging
}

func (c *Config) IsDevelopment() bool {
	return c.env == development
}

// Return a string representation suitable for logging etc
func (c *Config) NonSensitiveString() string {
	return fmt.Sprintf(
		"Config{env: %s, otel: %t, notation: %s, places: %d, displayBase: %d, exponentBase: %d, ...}",
		string(c.env), c.otelEnabled, c.notation, c.places, c.displayOptions.DisplayBase, c.displayOptions.ExponentBase,
	)
}

func ConfigFromEnv() (Config, error) {
	missingKey := func(key string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequiredValue, key)
	}
	invalidValue := func(key string, raw string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s (%s)", ErrInvalidValue, key, raw)
	}

	var env environment
	rawEnv, ok := os.LookupEnv("NOTATIONS_ENVIRONMENT")
	if !ok {
		return missingKey("NOTATIONS_ENVIRONMENT")
	}
	switch rawEnv {
	case "production":
		env = production
	case "staging":
		env = staging
	case "development":
		env = development
	default:
		return invalidValue("NOTATIONS_ENVIRONMENT", rawEnv)
	}
	if string(env) == "" {
		panic("logic error: env is empty")
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	if (env == production || env == staging) && sentryDSN == "" {
		return missingKey("SENTRY_DSN")
	}

	otelEnabled := false
	if raw := os.Getenv("OTEL_ENABLED"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return invalidValue("OTEL_ENABLED", raw)
		}
		otelEnabled = parsed
	}

	notationID := notation.MixedScientific
	if raw := os.Getenv("DISPLAY_NOTATION"); raw != "" {
		parsed, err := notation.ParseID(raw)
		if err != nil {
			return invalidValue("DISPLAY_NOTATION", raw)
		}
		notationID = parsed
	}

	places := defaultPlaces
	if raw := os.Getenv("DISPLAY_PLACES"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return invalidValue("DISPLAY_PLACES", raw)
		}
		places = parsed
	}

	displayOptions := notation.DefaultOptions()
	if raw := os.Getenv("DISPLAY_BASE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return invalidValue("DISPLAY_BASE", raw)
		}
		displayOptions.DisplayBase = parsed
	}
	if raw := os.Getenv("DISPLAY_DIGITS"); raw != "" {
		displayOptions.DisplayDigits = raw
	}
	if raw := os.Getenv("EXPONENT_BASE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return invalidValue("EXPONENT_BASE", raw)
		}
		displayOptions.ExponentBase = parsed
	}
	if raw := os.Getenv("EXPONENT_ALPHABET"); raw != "" {
		displayOptions.Alphabet = raw
	}
	if err := displayOptions.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: display options: %w", ErrInvalidValue, err)
	}

	return Config{
		sentryDSN:      sentryDSN,
		otelEnabled:    otelEnabled,
		notation:       notationID,
		places:         places,
		displayOptions: displayOptions,
		env:            env,
	}, nil
}
