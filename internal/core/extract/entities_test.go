package extract

import (
	"context"
	"testing"

	"github.com/medassist/scribe/internal/core/catalog"
	"github.com/medassist/scribe/internal/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor() *EntityExtractor {
	return NewEntityExtractor(nlp.NewRuleSegmenter(), catalog.New())
}

func TestExtract_OverlappingPhrasesAllKept(t *testing.T) {
	e := newTestExtractor()

	set, err := e.Extract(context.Background(), "They said it was a whiplash injury.")
	require.NoError(t, err)

	// "whiplash", "injury", and the two-word phrase all match the same span.
	assert.Equal(t, []string{"injury", "whiplash", "whiplash injury"}, set.Diagnoses)
}

func TestExtract_SymptomsSortedAndDeduplicated(t *testing.T) {
	e := newTestExtractor()

	set, err := e.Extract(context.Background(), "I had neck pain and back pain.")
	require.NoError(t, err)

	// "pain" occurs twice but appears once; output is sorted.
	assert.Equal(t, []string{"back pain", "neck pain", "pain"}, set.Symptoms)
}

func TestExtract_CaseInsensitive(t *testing.T) {
	e := newTestExtractor()

	set, err := e.Extract(context.Background(), "PHYSIOTHERAPY helped with the Stiffness.")
	require.NoError(t, err)

	assert.Equal(t, []string{"physiotherapy"}, set.Treatments)
	assert.Equal(t, []string{"stiffness"}, set.Symptoms)
}

func TestExtract_PrognosisSentences(t *testing.T) {
	e := newTestExtractor()

	set, err := e.Extract(context.Background(), "I expect a full recovery within six months. See you then.")
	require.NoError(t, err)

	require.Len(t, set.Prognosis, 1)
	assert.Equal(t, "I expect a full recovery within six months.", set.Prognosis[0])
}

func TestExtract_NoPartialTokenMatches(t *testing.T) {
	e := newTestExtractor()

	// "backaches" is not the token "backache"; phrase matching is token-exact.
	set, err := e.Extract(context.Background(), "I still get backaches sometimes.")
	require.NoError(t, err)

	assert.Empty(t, set.Symptoms)
}

func TestExtract_Empty(t *testing.T) {
	e := newTestExtractor()

	set, err := e.Extract(context.Background(), "")
	require.NoError(t, err)

	assert.Empty(t, set.Symptoms)
	assert.Empty(t, set.Treatments)
	assert.Empty(t, set.Diagnoses)
	assert.Empty(t, set.Prognosis)
}
