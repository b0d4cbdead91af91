// Package sentiment remaps a generic polarity verdict into the clinical
// Anxious/Reassured/Neutral labels. A binary classifier conflates clinical
// reassurance with plain positivity, so the domain lexicons take precedence
// over the raw model whenever they fire.
package sentiment

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/medassist/scribe/internal/core/catalog"
	"github.com/medassist/scribe/internal/core/model"
	"github.com/medassist/scribe/internal/nlp"
)

// maxClassifierInput bounds the text sent to the classifier collaborator.
const maxClassifierInput = 512

// Mapper owns the compiled word-boundary lexicon patterns and the
// classifier collaborator.
type Mapper struct {
	Classifier nlp.Classifier

	catalog     *catalog.Catalog
	anxiety     []*regexp.Regexp
	reassurance []*regexp.Regexp
}

func NewMapper(cat *catalog.Catalog, classifier nlp.Classifier) *Mapper {
	return &Mapper{
		Classifier:  classifier,
		catalog:     cat,
		anxiety:     wordPatterns(cat.AnxietyWords),
		reassurance: wordPatterns(cat.ReassuranceWords),
	}
}

// wordPatterns compiles whole-word matchers so "concern" never fires inside
// an unrelated word.
func wordPatterns(words []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		out = append(out, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return out
}

// Analyze classifies one statement. Empty or near-empty input short-circuits
// to Neutral before the collaborator is ever called.
func (m *Mapper) Analyze(ctx context.Context, text string) (model.SentimentResult, error) {
	if len(strings.TrimSpace(text)) < 3 {
		return model.SentimentResult{
			Sentiment:  model.SentimentNeutral,
			Confidence: 0.0,
			RawLabel:   "NEUTRAL",
			RawScore:   0.0,
		}, nil
	}

	verdict, err := m.Classifier.Classify(ctx, truncate(text, maxClassifierInput))
	if err != nil {
		return model.SentimentResult{}, fmt.Errorf("sentiment classifier failed: %w", err)
	}

	score := round3(verdict.Score)
	return model.SentimentResult{
		Sentiment:  m.Map(verdict.Label, verdict.Score, text),
		Confidence: score,
		RawLabel:   verdict.Label,
		RawScore:   score,
	}, nil
}

// Map applies the override chain to a raw verdict. First matching rule wins:
// anxiety lexicon (unless negated or countered by a recovery cue), then
// reassurance/recovery, then the raw model at high confidence, then Neutral.
func (m *Mapper) Map(rawLabel string, rawScore float64, text string) string {
	lower := strings.ToLower(text)

	hasNegation := false
	for _, p := range m.catalog.NegationPatterns {
		if p.MatchString(lower) {
			hasNegation = true
			break
		}
	}

	hasAnxiety := !hasNegation && matchesAny(m.anxiety, lower)
	hasReassurance := matchesAny(m.reassurance, lower)

	hasRecovery := false
	for _, phrase := range m.catalog.RecoveryPhrases {
		if strings.Contains(lower, phrase) {
			hasRecovery = true
			break
		}
	}

	if hasAnxiety && !(hasReassurance || hasRecovery) {
		return model.SentimentAnxious
	}
	if hasRecovery || hasReassurance {
		return model.SentimentReassured
	}
	if rawLabel == "NEGATIVE" && rawScore > 0.9 {
		return model.SentimentAnxious
	}
	if rawLabel == "POSITIVE" && rawScore > 0.8 {
		return model.SentimentReassured
	}
	return model.SentimentNeutral
}

func matchesAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
