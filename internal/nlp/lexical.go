package nlp

import (
	"context"
	"regexp"
	"strings"
)

// Polarity word lists for the offline classifier. Deliberately generic:
// the clinical overrides live in core/sentiment, not here.
var (
	positiveWords = []string{
		"good", "great", "better", "fine", "well", "glad", "happy",
		"relieved", "relief", "thank", "thanks", "helpful", "improving",
		"improved", "comfortable", "okay", "reassuring",
	}
	negativeWords = []string{
		"bad", "worse", "pain", "painful", "hurt", "hurts", "worried",
		"worry", "anxious", "scared", "afraid", "terrible", "awful",
		"uncomfortable", "rough", "severe", "trouble",
	}

	lexicalWord = regexp.MustCompile(`[a-z']+`)

	// negators suppress a polarity word within the next two positions, so
	// "not worried" and "no longer worried" carry no negative signal.
	negators = map[string]bool{
		"not": true, "no": true, "never": true, "hardly": true,
	}
)

// maxLexicalScore keeps the word-count scorer out of the downstream
// mapper's extreme-verdict rules: a naive scorer must never claim the
// near-certain confidence those rules are reserved for.
const maxLexicalScore = 0.9

// LexicalClassifier is the terminal fallback in the provider chain: a
// word-count polarity scorer that needs no network or model files.
type LexicalClassifier struct {
	positive map[string]bool
	negative map[string]bool
}

func NewLexicalClassifier() *LexicalClassifier {
	c := &LexicalClassifier{
		positive: make(map[string]bool, len(positiveWords)),
		negative: make(map[string]bool, len(negativeWords)),
	}
	for _, w := range positiveWords {
		c.positive[w] = true
	}
	for _, w := range negativeWords {
		c.negative[w] = true
	}
	return c
}

func (c *LexicalClassifier) Classify(ctx context.Context, text string) (Verdict, error) {
	words := lexicalWord.FindAllString(strings.ToLower(text), -1)

	var pos, neg int
	for i, w := range words {
		if !c.positive[w] && !c.negative[w] {
			continue
		}
		if negated(words, i) {
			continue
		}
		if c.positive[w] {
			pos++
		}
		if c.negative[w] {
			neg++
		}
	}

	total := pos + neg
	if total == 0 || pos == neg {
		// No polarity signal either way; a mid-range positive verdict keeps
		// the downstream mapper on its Neutral branch.
		return Verdict{Label: "POSITIVE", Score: 0.5}, nil
	}

	margin := float64(pos-neg) / float64(total)
	if margin < 0 {
		margin = -margin
	}
	label := "POSITIVE"
	if neg > pos {
		label = "NEGATIVE"
	}
	return Verdict{Label: label, Score: 0.5 + (maxLexicalScore-0.5)*margin}, nil
}

// negated reports whether a negator appears within the two words before
// index i.
func negated(words []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-2; j-- {
		if negators[words[j]] {
			return true
		}
	}
	return false
}
