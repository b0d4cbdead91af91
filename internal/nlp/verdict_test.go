package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVerdict_CleanJSON(t *testing.T) {
	v, err := parseVerdict(`{"label": "NEGATIVE", "score": 0.92}`)
	require.NoError(t, err)
	assert.Equal(t, "NEGATIVE", v.Label)
	assert.InDelta(t, 0.92, v.Score, 1e-9)
}

func TestParseVerdict_SurroundingProse(t *testing.T) {
	response := "Sure! Here is the classification:\n```json\n{\"label\": \"POSITIVE\", \"score\": 0.8}\n```\nLet me know if you need anything else."
	v, err := parseVerdict(response)
	require.NoError(t, err)
	assert.Equal(t, "POSITIVE", v.Label)
	assert.InDelta(t, 0.8, v.Score, 1e-9)
}

func TestParseVerdict_NormalizesLabelCase(t *testing.T) {
	v, err := parseVerdict(`{"label": " positive ", "score": 0.7}`)
	require.NoError(t, err)
	assert.Equal(t, "POSITIVE", v.Label)
}

func TestParseVerdict_ClampsScore(t *testing.T) {
	v, err := parseVerdict(`{"label": "NEGATIVE", "score": 1.7}`)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v.Score, 1e-9)

	v, err = parseVerdict(`{"label": "NEGATIVE", "score": -0.2}`)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, v.Score, 1e-9)
}

func TestParseVerdict_RejectsUnknownLabel(t *testing.T) {
	_, err := parseVerdict(`{"label": "MIXED", "score": 0.5}`)
	assert.Error(t, err)
}

func TestParseVerdict_NoJSON(t *testing.T) {
	_, err := parseVerdict("the text is positive")
	assert.Error(t, err)
}
