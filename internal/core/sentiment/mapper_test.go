package sentiment

import (
	"context"
	"strings"
	"testing"

	"github.com/medassist/scribe/internal/core/catalog"
	"github.com/medassist/scribe/internal/core/model"
	"github.com/medassist/scribe/internal/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClassifier returns a fixed verdict and records what it was asked.
type stubClassifier struct {
	verdict nlp.Verdict
	err     error

	calls     int
	lastInput string
}

func (s *stubClassifier) Classify(ctx context.Context, text string) (nlp.Verdict, error) {
	s.calls++
	s.lastInput = text
	return s.verdict, s.err
}

func newTestMapper(stub *stubClassifier) *Mapper {
	return NewMapper(catalog.New(), stub)
}

func TestAnalyze_AnxietyLexiconOverridesVerdict(t *testing.T) {
	stub := &stubClassifier{verdict: nlp.Verdict{Label: "POSITIVE", Score: 0.99}}
	m := newTestMapper(stub)

	res, err := m.Analyze(context.Background(), "I'm worried about my back pain")
	require.NoError(t, err)

	// The lexicon wins even against a confident positive verdict.
	assert.Equal(t, model.SentimentAnxious, res.Sentiment)
	assert.Equal(t, 1, stub.calls)
}

func TestAnalyze_EmptyInputSkipsClassifier(t *testing.T) {
	stub := &stubClassifier{verdict: nlp.Verdict{Label: "NEGATIVE", Score: 0.99}}
	m := newTestMapper(stub)

	res, err := m.Analyze(context.Background(), "   ")
	require.NoError(t, err)

	assert.Equal(t, model.SentimentNeutral, res.Sentiment)
	assert.Equal(t, 0.0, res.Confidence)
	assert.Equal(t, "NEUTRAL", res.RawLabel)
	assert.Equal(t, 0, stub.calls)
}

func TestAnalyze_TruncatesClassifierInput(t *testing.T) {
	stub := &stubClassifier{verdict: nlp.Verdict{Label: "POSITIVE", Score: 0.5}}
	m := newTestMapper(stub)

	_, err := m.Analyze(context.Background(), strings.Repeat("a", 600))
	require.NoError(t, err)

	assert.Len(t, []rune(stub.lastInput), maxClassifierInput)
}

func TestAnalyze_RoundsConfidence(t *testing.T) {
	stub := &stubClassifier{verdict: nlp.Verdict{Label: "POSITIVE", Score: 0.87654}}
	m := newTestMapper(stub)

	res, err := m.Analyze(context.Background(), "The visit went as scheduled")
	require.NoError(t, err)

	assert.Equal(t, 0.877, res.Confidence)
	assert.Equal(t, 0.877, res.RawScore)
}

func TestAnalyze_ClassifierErrorPropagates(t *testing.T) {
	stub := &stubClassifier{err: assert.AnError}
	m := newTestMapper(stub)

	_, err := m.Analyze(context.Background(), "Some statement")
	assert.Error(t, err)
}

func TestMap_NegationSuppressesAnxiety(t *testing.T) {
	m := newTestMapper(&stubClassifier{})

	// "worried" alone is Anxious; negated it falls through to the verdict.
	assert.Equal(t, model.SentimentAnxious, m.Map("NEGATIVE", 0.6, "I'm worried about it"))
	assert.Equal(t, model.SentimentNeutral, m.Map("NEGATIVE", 0.6, "I'm not worried about it"))
}

func TestMap_RecoveryPhraseBeatsAnxiety(t *testing.T) {
	m := newTestMapper(&stubClassifier{})

	assert.Equal(t, model.SentimentReassured, m.Map("NEGATIVE", 0.95, "I was worried but I'm getting better"))
}

func TestMap_RecoveryPhrase(t *testing.T) {
	m := newTestMapper(&stubClassifier{})

	assert.Equal(t, model.SentimentReassured, m.Map("NEGATIVE", 0.5, "I'm back to normal and doing everything as usual"))
}

func TestMap_VerdictThresholds(t *testing.T) {
	m := newTestMapper(&stubClassifier{})

	// Neutral text with no lexicon hits; only the raw verdict decides.
	text := "The injections were administered on schedule"
	assert.Equal(t, model.SentimentAnxious, m.Map("NEGATIVE", 0.95, text))
	assert.Equal(t, model.SentimentNeutral, m.Map("NEGATIVE", 0.9, text))
	assert.Equal(t, model.SentimentReassured, m.Map("POSITIVE", 0.85, text))
	assert.Equal(t, model.SentimentNeutral, m.Map("POSITIVE", 0.8, text))
}

func TestMap_WholeWordAnxietyMatching(t *testing.T) {
	m := newTestMapper(&stubClassifier{})

	// "unconcerned" must not fire the "concerned" lexicon entry.
	assert.Equal(t, model.SentimentNeutral, m.Map("POSITIVE", 0.5, "He seemed unconcerned and calm"))
	assert.Equal(t, model.SentimentAnxious, m.Map("POSITIVE", 0.5, "I am scared of the scan"))
}
