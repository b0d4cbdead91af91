package model

// Domain sentiment labels. A generic polarity classifier only knows
// POSITIVE/NEGATIVE; the mapper narrows its verdict to these.
const (
	SentimentAnxious   = "Anxious"
	SentimentReassured = "Reassured"
	SentimentNeutral   = "Neutral"
)

// SentimentResult is the mapped sentiment for a single statement, keeping
// the raw classifier verdict alongside for auditability.
type SentimentResult struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	RawLabel   string  `json:"raw_label"`
	RawScore   float64 `json:"raw_score"`
}

// StatementLabel is the response shape of the sentiment+intent entry point.
type StatementLabel struct {
	Sentiment string `json:"Sentiment"`
	Intent    string `json:"Intent"`
}

// StatementAnalysis is one row of a per-statement dialogue analysis.
type StatementAnalysis struct {
	Statement  string  `json:"statement"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Intent     string  `json:"intent"`
}

// DialogueSummary aggregates per-statement results over a whole transcript.
type DialogueSummary struct {
	OverallSentiment      string         `json:"overall_sentiment"`
	SentimentDistribution map[string]int `json:"sentiment_distribution"`
	DominantIntent        string         `json:"dominant_intent"`
	IntentDistribution    map[string]int `json:"intent_distribution,omitempty"`
	AverageConfidence     float64        `json:"average_confidence"`
	StatementCount        int            `json:"statement_count"`
}
