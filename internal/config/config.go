// Package config loads the service configuration. Values come from an optional
// YAML file, overridden by environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the settings for the CLI and the HTTP server.
type Config struct {
	// Server settings
	Port           int           `koanf:"port"`
	Env            string        `koanf:"env"`
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// Gemini
	GeminiAPIKey string `koanf:"gemini_api_key"`
	GeminiModel  string `koanf:"gemini_model"` // overrides the standard model tier

	// Logging
	LogJSON  bool `koanf:"log_json"`
	LogDebug bool `koanf:"log_debug"`

	// Matching
	MatchWorkers int `koanf:"match_workers"`
	MaxFeatures  int `koanf:"max_features"`

	// Feature flags
	RateLimitEnabled bool `koanf:"rate_limit_enabled"`
}

// Configuration validation errors.
var (
	ErrInvalidPort           = errors.New("PORT must be a valid integer between 1 and 65535")
	ErrInvalidInteger        = errors.New("value must be a valid integer")
	ErrInvalidDuration       = errors.New("value must be a valid duration")
	ErrInvalidLogFormat      = errors.New("LOG_FORMAT must be json or console")
	ErrInvalidLogLevel       = errors.New("LOG_LEVEL must be debug or info")
	ErrInvalidWorkers        = errors.New("MATCH_WORKERS must be positive")
	ErrInvalidMaxFeatures    = errors.New("MATCH_MAX_FEATURES must be positive")
	ErrInvalidRequestTimeout = errors.New("REQUEST_TIMEOUT must be positive")
)

// Default values.
const (
	DefaultPort             = 8000
	DefaultEnv              = "development"
	DefaultMaxFeatures      = 1000
	DefaultRequestTimeout   = 30 * time.Second
	DefaultRateLimitEnabled = true
)

// Load reads configuration from an optional YAML file and the environment.
// Environment variables take precedence over file values. It returns the config
// together with every validation error found; a file that cannot be loaded is
// reported alone with a nil config.
func Load(configFilePath string) (*Config, []error) {
	k := koanf.New(".")
	var loadErrs []error

	if configFilePath != "" {
		if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
			return nil, []error{fmt.Errorf("failed to load config file %s: %w", configFilePath, err)}
		}
	}

	port, err := getEnvIntOrDefaultMulti([]string{"REELAPPS_PORT", "PORT"}, k.Int("port"), DefaultPort)
	if err != nil {
		loadErrs = append(loadErrs, err)
	}

	workers, err := getEnvIntOrDefaultMulti([]string{"MATCH_WORKERS"}, k.Int("match_workers"), runtime.NumCPU())
	if err != nil {
		loadErrs = append(loadErrs, err)
	}

	maxFeatures, err := getEnvIntOrDefaultMulti([]string{"MATCH_MAX_FEATURES"}, k.Int("max_features"), DefaultMaxFeatures)
	if err != nil {
		loadErrs = append(loadErrs, err)
	}

	timeout, err := getEnvDurationOrDefault("REQUEST_TIMEOUT", k.Duration("request_timeout"), DefaultRequestTimeout)
	if err != nil {
		loadErrs = append(loadErrs, err)
	}

	logJSON := k.Bool("log_json")
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		switch strings.ToLower(val) {
		case "json":
			logJSON = true
		case "console", "text":
			logJSON = false
		default:
			loadErrs = append(loadErrs, fmt.Errorf("%w: got %q", ErrInvalidLogFormat, val))
		}
	}

	logDebug := k.Bool("log_debug")
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		switch strings.ToLower(val) {
		case "debug":
			logDebug = true
		case "info":
			logDebug = false
		default:
			loadErrs = append(loadErrs, fmt.Errorf("%w: got %q", ErrInvalidLogLevel, val))
		}
	}

	rateLimit := DefaultRateLimitEnabled
	if k.Exists("rate_limit_enabled") {
		rateLimit = k.Bool("rate_limit_enabled")
	}
	rateLimit = getEnvBool("RATE_LIMIT_ENABLED", rateLimit)

	cfg := &Config{
		Port:             port,
		Env:              getEnvOrDefaultMulti([]string{"REELAPPS_ENV", "ENV"}, k.String("env"), DefaultEnv),
		RequestTimeout:   timeout,
		GeminiAPIKey:     getEnvOrKoanf("GEMINI_API_KEY", k, "gemini_api_key"),
		GeminiModel:      getEnvOrKoanf("GEMINI_MODEL", k, "gemini_model"),
		LogJSON:          logJSON,
		LogDebug:         logDebug,
		MatchWorkers:     workers,
		MaxFeatures:      maxFeatures,
		RateLimitEnabled: rateLimit,
	}

	errs := append(loadErrs, cfg.Validate()...)
	return cfg, errs
}

// getEnvOrKoanf returns the environment variable value if set, otherwise the koanf value.
func getEnvOrKoanf(envKey string, k *koanf.Koanf, koanfKey string) string {
	if val := os.Getenv(envKey); val != "" {
		return val
	}
	return k.String(koanfKey)
}

// getEnvOrDefaultMulti returns the first non-empty env value, otherwise the koanf value, or default.
func getEnvOrDefaultMulti(envKeys []string, koanfVal string, defaultVal string) string {
	for _, key := range envKeys {
		if val := os.Getenv(key); val != "" {
			return val
		}
	}
	if koanfVal != "" {
		return koanfVal
	}
	return defaultVal
}

// getEnvIntOrDefaultMulti is the integer form of getEnvOrDefaultMulti. A set but
// unparsable variable is an error. A zero koanf value falls back to the default.
func getEnvIntOrDefaultMulti(envKeys []string, koanfVal int, defaultVal int) (int, error) {
	for _, key := range envKeys {
		if val := os.Getenv(key); val != "" {
			i, err := strconv.Atoi(val)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", key, ErrInvalidInteger)
			}
			return i, nil
		}
	}
	if koanfVal != 0 {
		return koanfVal, nil
	}
	return defaultVal, nil
}

// getEnvDurationOrDefault accepts Go durations ("45s") or bare seconds ("45").
func getEnvDurationOrDefault(envKey string, koanfVal time.Duration, defaultVal time.Duration) (time.Duration, error) {
	if val := os.Getenv(envKey); val != "" {
		if secs, err := strconv.Atoi(val); err == nil {
			return time.Duration(secs) * time.Second, nil
		}
		d, err := time.ParseDuration(val)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", envKey, ErrInvalidDuration)
		}
		return d, nil
	}
	if koanfVal != 0 {
		return koanfVal, nil
	}
	return defaultVal, nil
}

func getEnvBool(envKey string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(envKey)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}
	return fallback
}

// Validate checks value ranges. Returns a slice of validation errors (empty if valid).
func (c *Config) Validate() []error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, ErrInvalidPort)
	}
	if c.MatchWorkers < 1 {
		errs = append(errs, ErrInvalidWorkers)
	}
	if c.MaxFeatures < 1 {
		errs = append(errs, ErrInvalidMaxFeatures)
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidRequestTimeout)
	}

	return errs
}

// AIAvailable reports whether a Gemini API key is configured.
func (c *Config) AIAvailable() bool {
	return strings.TrimSpace(c.GeminiAPIKey) != ""
}

// LogSummary returns the configuration for logging with the API key masked.
func (c *Config) LogSummary() map[string]string {
	return map[string]string{
		"port":               strconv.Itoa(c.Port),
		"env":                c.Env,
		"request_timeout":    c.RequestTimeout.String(),
		"gemini_api_key":     maskSecret(c.GeminiAPIKey),
		"gemini_model":       c.GeminiModel,
		"log_json":           strconv.FormatBool(c.LogJSON),
		"log_debug":          strconv.FormatBool(c.LogDebug),
		"match_workers":      strconv.Itoa(c.MatchWorkers),
		"max_features":       strconv.Itoa(c.MaxFeatures),
		"rate_limit_enabled": strconv.FormatBool(c.RateLimitEnabled),
	}
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
