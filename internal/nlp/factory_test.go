package nlp

import (
	"context"
	"testing"

	"github.com/medassist/scribe/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassifier_Lexical(t *testing.T) {
	c, err := NewClassifier(context.Background(), config.ProviderConfig{Provider: "lexical"})
	require.NoError(t, err)
	assert.IsType(t, &LexicalClassifier{}, c)
}

func TestNewClassifier_UnsupportedProvider(t *testing.T) {
	_, err := NewClassifier(context.Background(), config.ProviderConfig{Provider: "watson"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported classifier provider")
}

func TestNewClassifierChain_FallsBackToNextProvider(t *testing.T) {
	providers := []config.ProviderConfig{
		{Provider: "watson"}, // unknown, fails to initialize
		{Provider: "lexical"},
	}
	c, err := NewClassifierChain(context.Background(), providers)
	require.NoError(t, err)
	assert.IsType(t, &LexicalClassifier{}, c)
}

func TestNewClassifierChain_FirstSuccessWins(t *testing.T) {
	providers := []config.ProviderConfig{
		{Provider: "lexical"},
		{Provider: "openai", APIKey: "test-key", Model: "gpt-4o-mini"},
	}
	c, err := NewClassifierChain(context.Background(), providers)
	require.NoError(t, err)
	assert.IsType(t, &LexicalClassifier{}, c)
}

func TestNewClassifierChain_AllFail(t *testing.T) {
	providers := []config.ProviderConfig{
		{Provider: "watson"},
		{Provider: "comprehend"},
	}
	_, err := NewClassifierChain(context.Background(), providers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all classifier providers failed")
}

func TestNewClassifierChain_Empty(t *testing.T) {
	_, err := NewClassifierChain(context.Background(), nil)
	assert.Error(t, err)
}
