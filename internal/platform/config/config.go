package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	AppName    = "Currency Companion"
	AppVersion = "1.0.0"
)

const (
	defaultRatesAPIURL         = "https://open.er-api.com/v6"
	defaultBaseCurrency        = "USD"
	defaultRatesFetchTimeout   = 10 * time.Second
	defaultAssistantReplyDelay = time.Second
	defaultRateLimit           = "100-M"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Exchange rate provider
	RatesAPIURL       string
	BaseCurrency      string
	RatesFetchTimeout time.Duration

	// Help bot typing delay; zero replies immediately
	AssistantReplyDelay time.Duration

	// HTTP hardening
	RateLimit          string   `mapstructure:"RATE_LIMIT"` // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Terminal client
	TUILogFile string `mapstructure:"TUI_LOG_FILE"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("RATES_API_URL", defaultRatesAPIURL)
	v.SetDefault("RATES_BASE_CURRENCY", defaultBaseCurrency)
	v.SetDefault("RATES_FETCH_TIMEOUT", defaultRatesFetchTimeout.String())
	v.SetDefault("ASSISTANT_REPLY_DELAY", defaultAssistantReplyDelay.String())
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("TUI_LOG_FILE", "")

	// Environment variables override .env values, which override the defaults above.
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	cfg.RatesAPIURL = strings.TrimRight(v.GetString("RATES_API_URL"), "/")
	if cfg.RatesAPIURL == "" {
		cfg.RatesAPIURL = defaultRatesAPIURL
		log.Printf("Warning: RATES_API_URL is empty. Defaulting to %s.\n", cfg.RatesAPIURL)
	}

	// Rates are always expressed against USD; anything else would silently break conversions.
	cfg.BaseCurrency = strings.ToUpper(v.GetString("RATES_BASE_CURRENCY"))
	if cfg.BaseCurrency != defaultBaseCurrency {
		log.Printf("Warning: Unsupported RATES_BASE_CURRENCY ('%s'). Using %s.\n", cfg.BaseCurrency, defaultBaseCurrency)
		cfg.BaseCurrency = defaultBaseCurrency
	}

	cfg.RatesFetchTimeout = parseDuration(v, "RATES_FETCH_TIMEOUT", defaultRatesFetchTimeout, false)
	cfg.AssistantReplyDelay = parseDuration(v, "ASSISTANT_REPLY_DELAY", defaultAssistantReplyDelay, true)

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.TUILogFile = v.GetString("TUI_LOG_FILE")

	return cfg
}

// parseDuration reads key as a Go duration (e.g. "750ms", "2s"), falling back to def when it is invalid.
func parseDuration(v *viper.Viper, key string, def time.Duration, allowZero bool) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 || (d == 0 && !allowZero) {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
