package nlp

import (
	"context"
	"regexp"
	"strings"
)

var (
	tokenPattern   = regexp.MustCompile(`[A-Za-z0-9']+`)
	sentenceCloser = regexp.MustCompile(`[.!?]+`)
)

// Titles and common abbreviations that end with a period mid-sentence.
var abbreviations = []string{"Mr.", "Mrs.", "Ms.", "Dr.", "Prof.", "St.", "e.g.", "i.e."}

// RuleSegmenter is the in-process Segmenter: word tokens by regex, sentence
// boundaries after closing punctuation or at line breaks. It never fails.
type RuleSegmenter struct{}

func NewRuleSegmenter() *RuleSegmenter {
	return &RuleSegmenter{}
}

func (s *RuleSegmenter) Segment(ctx context.Context, text string) (*Document, error) {
	doc := &Document{Text: text}

	for _, loc := range tokenPattern.FindAllStringIndex(text, -1) {
		doc.Tokens = append(doc.Tokens, Token{
			Text:  text[loc[0]:loc[1]],
			Start: loc[0],
			End:   loc[1],
		})
	}

	doc.Sentences = splitSentences(text)
	return doc, nil
}

// splitSentences cuts after runs of [.!?] followed by whitespace or end of
// line, and additionally at newlines so each transcript line stays whole.
func splitSentences(text string) []string {
	var sentences []string
	for _, line := range strings.Split(text, "\n") {
		start := 0
		for _, loc := range sentenceCloser.FindAllStringIndex(line, -1) {
			if loc[1] < len(line) && line[loc[1]] != ' ' && line[loc[1]] != '\t' {
				continue // punctuation inside a token, e.g. "12:30" or "3.5"
			}
			if endsWithAbbreviation(line[:loc[1]]) {
				continue
			}
			if s := strings.TrimSpace(line[start:loc[1]]); s != "" {
				sentences = append(sentences, s)
			}
			start = loc[1]
		}
		if s := strings.TrimSpace(line[start:]); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func endsWithAbbreviation(prefix string) bool {
	for _, abbr := range abbreviations {
		if strings.HasSuffix(prefix, abbr) {
			return true
		}
	}
	return false
}
