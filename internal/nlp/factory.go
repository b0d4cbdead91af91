package nlp

import (
	"context"
	"fmt"
	"strings"

	"github.com/medassist/scribe/internal/config"
)

// NewClassifier builds a single classifier for one provider entry.
func NewClassifier(ctx context.Context, cfg config.ProviderConfig) (Classifier, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIClassifier(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "claude":
		return NewClaudeClassifier(cfg.APIKey, cfg.Model, cfg.BaseURL), nil

	case "gemini":
		return NewGeminiClassifier(ctx, cfg.APIKey, cfg.Model)

	case "ollama":
		// Ollama speaks the OpenAI API; the key is ignored but required.
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = "ollama"
		}
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return NewOpenAIClassifier(apiKey, cfg.Model, baseURL), nil

	case "lexical":
		return NewLexicalClassifier(), nil

	default:
		return nil, fmt.Errorf("unsupported classifier provider: %s", cfg.Provider)
	}
}

// NewClassifierChain walks the configured providers in order and returns
// the first one that initializes. Only when every provider fails does
// initialization surface a fatal error; there is no silent degraded mode.
func NewClassifierChain(ctx context.Context, providers []config.ProviderConfig) (Classifier, error) {
	if len(providers) == 0 {
		return nil, fmt.Errorf("no classifier providers configured")
	}

	var errs []string
	for _, p := range providers {
		c, err := NewClassifier(ctx, p)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", p.Provider, err))
			continue
		}
		return c, nil
	}
	return nil, fmt.Errorf("all classifier providers failed: %s", strings.Join(errs, "; "))
}
