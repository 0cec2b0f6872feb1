package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderMock   = "mock"
)

type Config struct {
	Env            string        `mapstructure:"ENV"`
	Port           string        `mapstructure:"PORT"`
	CallsDir       string        `mapstructure:"CALLS_DIR"`
	GeminiAPIKey   string        `mapstructure:"GEMINI_API_KEY"`
	AIProvider     string        `mapstructure:"AI_PROVIDER"`
	AIBaseURL      string        `mapstructure:"AI_BASE_URL"`
	AIModel        string        `mapstructure:"AI_MODEL"`
	AITimeout      time.Duration `mapstructure:"AI_TIMEOUT"`
	CORSAllowed    string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
}

func Load() (Config, error) {
	return LoadFile(".env")
}

// LoadFile reads configuration from the given env file (if present) and the
// process environment, which takes precedence.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "3000")
	v.SetDefault("CALLS_DIR", "./demo_calls")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("AI_PROVIDER", "")
	v.SetDefault("AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/openai/")
	v.SetDefault("AI_MODEL", "gemini-2.0-flash")
	v.SetDefault("AI_TIMEOUT", "30s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("REQUEST_TIMEOUT", "60s")
	v.SetDefault("LOG_LEVEL", "info")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.AIProvider = strings.ToLower(strings.TrimSpace(cfg.AIProvider))
	return cfg, nil
}

// Provider resolves which generator to use. An empty result means the
// service runs on fallback analyses only.
func (c Config) Provider() string {
	switch c.AIProvider {
	case ProviderMock:
		return ProviderMock
	case ProviderGemini, "":
		if strings.TrimSpace(c.GeminiAPIKey) != "" {
			return ProviderGemini
		}
	}
	return ""
}
