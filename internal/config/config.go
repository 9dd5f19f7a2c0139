package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	LLMAPIKey  string `env:"LLM_API_KEY"`
	LLMBaseURL string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel   string `env:"LLM_MODEL" envDefault:"gpt-5.1"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPass     string `env:"SMTP_PASS"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME" envDefault:"Talent Hub"`
	SMTPUseTLS   bool   `env:"SMTP_USE_TLS" envDefault:"false"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Perfil de scoring (tipos FX, ubicaciones, bandas de ruido, pesos por rol).
	ScoringProfilePath string `env:"SCORING_PROFILE_PATH"`
	FXFallbackUnknown  bool   `env:"FX_FALLBACK_UNKNOWN" envDefault:"false"`
	BatchConcurrency   int    `env:"BATCH_CONCURRENCY" envDefault:"8"`

	NarrativeTimeoutSeconds int `env:"NARRATIVE_TIMEOUT_SECONDS" envDefault:"20"`
	InsightCacheTTLMinutes  int `env:"INSIGHT_CACHE_TTL_MINUTES" envDefault:"60"`
	InsightRateLimit        int `env:"INSIGHT_RATE_LIMIT" envDefault:"30"`
	InsightRateWindowMin    int `env:"INSIGHT_RATE_WINDOW_MINUTES" envDefault:"10"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
