package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultVarietyPricesURL = "https://api.data.gov.in/resource/35985678-0d79-46b4-9ed6-6f13308a1d24"
	DefaultMandiPricesURL   = "https://api.data.gov.in/resource/9ef84268-d588-465a-a308-a864a43d0070"
	DefaultGroqBaseURL      = "https://api.groq.com/openai/v1"

	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Config holds application configuration.
type Config struct {
	Port      string
	JWTSecret string

	VarietyAPIKey   string
	MandiAPIKey     string
	VarietyURL      string
	MandiURL        string
	UpstreamTimeout time.Duration

	AIProvider   string
	GroqAPIKey   string
	GroqBaseURL  string
	GeminiAPIKey string
	AIModel      string
	AITimeout    time.Duration
}

// Load reads .env (if present) and the process environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetString("PORT"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		VarietyAPIKey:   v.GetString("VARIETY_PRICES_API_KEY"),
		MandiAPIKey:     v.GetString("MANDI_PRICES_API_KEY"),
		VarietyURL:      v.GetString("VARIETY_PRICES_URL"),
		MandiURL:        v.GetString("MANDI_PRICES_URL"),
		UpstreamTimeout: time.Duration(v.GetInt("UPSTREAM_TIMEOUT_SECONDS")) * time.Second,
		AIProvider:      strings.ToLower(strings.TrimSpace(v.GetString("AI_PROVIDER"))),
		GroqAPIKey:      v.GetString("GROQ_API_KEY"),
		GroqBaseURL:     v.GetString("GROQ_BASE_URL"),
		GeminiAPIKey:    v.GetString("GEMINI_API_KEY"),
		AIModel:         v.GetString("AI_MODEL"),
		AITimeout:       time.Duration(v.GetInt("AI_TIMEOUT_SECONDS")) * time.Second,
	}

	if cfg.VarietyAPIKey == "" || cfg.MandiAPIKey == "" {
		log.Println("Warning: price API keys missing. Set VARIETY_PRICES_API_KEY and MANDI_PRICES_API_KEY")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("VARIETY_PRICES_URL", DefaultVarietyPricesURL)
	v.SetDefault("MANDI_PRICES_URL", DefaultMandiPricesURL)
	v.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 10)
	v.SetDefault("AI_PROVIDER", ProviderGroq)
	v.SetDefault("GROQ_BASE_URL", DefaultGroqBaseURL)
	v.SetDefault("AI_TIMEOUT_SECONDS", 30)
}

// AICredential returns the key for the selected AI provider.
// The second value is false when no credential is configured.
func (c *Config) AICredential() (string, bool) {
	var key string
	switch c.AIProvider {
	case ProviderGemini:
		key = c.GeminiAPIKey
	default:
		key = c.GroqAPIKey
	}
	key = strings.TrimSpace(key)
	return key, key != ""
}
