package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

type Config struct {
	Server      ServerConfig
	Upstream    UpstreamConfig
	Gemini      GeminiConfig
	OpenAI      OpenAIConfig
	Ollama      OllamaConfig
	RedisConfig RedisConfig
	CacheEnable bool `env:"CACHE_ENABLE"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"2m"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ThrottleLimit   int           `env:"SERVER_THROTTLE_LIMIT" envDefault:"50"`
}

type UpstreamConfig struct {
	Provider string        `env:"UPSTREAM_PROVIDER" envDefault:"gemini"`
	Timeout  time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"110s"`
}

type GeminiConfig struct {
	APIKey         string `env:"GEMINI_API_KEY"`
	BaseURL        string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	Model          string `env:"GEMINI_MODEL" envDefault:"gemini-3-pro-preview"`
	ThinkingBudget int    `env:"GEMINI_THINKING_BUDGET" envDefault:"16000"`
}

type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"http://localhost:8000/v1"`
	Model   string `env:"OPENAI_MODEL" envDefault:"default"`
}

type OllamaConfig struct {
	URL   string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	Model string `env:"OLLAMA_MODEL" envDefault:"gemma3n:e4b"`
}

// ClientConfig is read by the command line tools that talk to the proxy.
type ClientConfig struct {
	BaseURL string        `env:"SCERA_BASE_URL" envDefault:"http://localhost:8080"`
	AnonKey string        `env:"SCERA_ANON_KEY"`
	Timeout time.Duration `env:"SCERA_TIMEOUT" envDefault:"3m"`
	DataDir string        `env:"SCERA_DATA_DIR" envDefault:"./chats"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
