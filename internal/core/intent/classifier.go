// Package intent scores statements against the ordered intent categories.
package intent

import (
	"strings"

	"github.com/medassist/scribe/internal/core/catalog"
)

// General is returned when no category pattern matches at all.
const General = "General conversation"

// Classifier scores a statement against each intent category. Every pattern
// contributes at most one point regardless of how often it occurs, and ties
// go to the category declared first.
type Classifier struct {
	Catalog *catalog.Catalog
}

func NewClassifier(cat *catalog.Catalog) *Classifier {
	return &Classifier{Catalog: cat}
}

// Detect returns the single best intent for text.
func (c *Classifier) Detect(text string) string {
	lower := strings.ToLower(text)

	best := General
	bestScore := 0
	for _, cat := range c.Catalog.Intents {
		score := 0
		for _, p := range cat.Patterns {
			if p.MatchString(lower) {
				score++
			}
		}
		// Strict > keeps the first-declared category on ties.
		if score > bestScore {
			best = cat.Name
			bestScore = score
		}
	}
	return best
}

// DetectMultiple returns every category with at least one pattern match, in
// declaration order.
func (c *Classifier) DetectMultiple(text string) []string {
	lower := strings.ToLower(text)

	var detected []string
	for _, cat := range c.Catalog.Intents {
		for _, p := range cat.Patterns {
			if p.MatchString(lower) {
				detected = append(detected, cat.Name)
				break
			}
		}
	}
	if len(detected) == 0 {
		return []string{General}
	}
	return detected
}
