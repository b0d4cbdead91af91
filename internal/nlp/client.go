// Package nlp defines the external language-processing collaborators the
// rule engine depends on, plus their concrete implementations. The core
// treats both collaborators as blocking calls that either succeed fully or
// fail with an error; there are no partial results.
package nlp

import "context"

// Token is a word-level token with byte offsets into the source text, so
// callers can recover the original surface form of a multi-token span.
type Token struct {
	Text  string
	Start int
	End   int
}

// Document is the segmentation of one text: its tokens in order and its
// sentences, trimmed.
type Document struct {
	Text      string
	Tokens    []Token
	Sentences []string
}

// Segmenter splits raw text into sentences and tokens.
type Segmenter interface {
	Segment(ctx context.Context, text string) (*Document, error)
}

// Verdict is a raw binary polarity result from a sentiment classifier.
// Label is POSITIVE or NEGATIVE; Score is the classifier's confidence in
// [0,1]. The domain mapping on top of this lives in core/sentiment.
type Verdict struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier scores the polarity of a bounded-length text.
type Classifier interface {
	Classify(ctx context.Context, text string) (Verdict, error)
}
