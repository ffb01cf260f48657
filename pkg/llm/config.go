package llm

import "time"

// Config represents the configuration for the completion provider.
type Config struct {
	APIKey  string        `env:"LLM_API_KEY,required"`                              // APIKey authenticates requests to the provider.
	BaseURL string        `env:"LLM_BASE_URL" envDefault:"https://api.openai.com"`  // BaseURL is the provider endpoint root.
	Model   string        `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`                // Model is the completion model identifier.
	Timeout time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`                      // Timeout bounds each provider call.
}
