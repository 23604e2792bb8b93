// Package llm wraps the generative-text oracle used by the analysis services.
// Callers pick a model tier; the client maps it to a concrete Gemini model.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierStandard is for structured analysis with JSON output
	TierStandard ModelTier = "standard"
	// TierAdvanced is for long free-text analysis
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// GenerationConfig holds sampling parameters sent with every request.
type GenerationConfig struct {
	Temperature     float32
	TopK            int32
	TopP            float32
	MaxOutputTokens int32
}

// Config holds the model configuration for the application
type Config struct {
	Provider   Provider
	Models     map[ModelTier]string
	Generation GenerationConfig
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Generation: GenerationConfig{
			Temperature:     0.3,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Unknown tiers fall back to standard
	return c.Models[TierStandard]
}

// WithModel returns a new Config with a specific model for a tier.
// An empty model leaves the tier unchanged.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider:   c.Provider,
		Models:     make(map[ModelTier]string, len(c.Models)+1),
		Generation: c.Generation,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	if model != "" {
		newConfig.Models[tier] = model
	}
	return newConfig
}
