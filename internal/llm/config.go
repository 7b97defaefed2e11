package llm

import "os"

// Provider identifies which hosted chat-completion backend a Config points at.
type Provider int

const (
	ProviderOpenRouter Provider = iota
	ProviderOpenAI
)

func (p Provider) String() string {
	switch p {
	case ProviderOpenRouter:
		return "openrouter"
	case ProviderOpenAI:
		return "openai"
	default:
		return "unknown"
	}
}

// Environment variables consumed by ResolveConfig.
const (
	EnvOpenRouterKey = "OPENROUTER_API_KEY"
	EnvOpenAIKey     = "OPENAI_API_KEY"
	EnvModel         = "LLM_MODEL"
)

const (
	openRouterEndpoint     = "https://openrouter.ai/api/v1/chat/completions"
	openRouterDefaultModel = "google/gemini-2.0-flash-001"

	openAIEndpoint     = "https://api.openai.com/v1/chat/completions"
	openAIDefaultModel = "gpt-4o-mini"
)

// Config is a fully resolved provider selection. Resolve it once, hand it to
// New, and the client never touches the environment again.
type Config struct {
	Provider Provider
	APIKey   string
	Model    string
	Endpoint string
}

// ResolveConfig picks the provider from the environment. OPENROUTER_API_KEY
// wins over OPENAI_API_KEY when both are set, and LLM_MODEL overrides the
// selected provider's default model verbatim. A variable set to the empty
// string counts as unset.
func ResolveConfig() (Config, error) {
	if key := os.Getenv(EnvOpenRouterKey); key != "" {
		return Config{
			Provider: ProviderOpenRouter,
			APIKey:   key,
			Model:    modelOr(openRouterDefaultModel),
			Endpoint: openRouterEndpoint,
		}, nil
	}
	if key := os.Getenv(EnvOpenAIKey); key != "" {
		return Config{
			Provider: ProviderOpenAI,
			APIKey:   key,
			Model:    modelOr(openAIDefaultModel),
			Endpoint: openAIEndpoint,
		}, nil
	}
	return Config{}, ErrMissingCredentials
}

func modelOr(def string) string {
	if m := os.Getenv(EnvModel); m != "" {
		return m
	}
	return def
}
