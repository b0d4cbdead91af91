package nlp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// classifyPrompt instructs a chat model to behave as a binary polarity
// classifier. The reply must be a single JSON object so parseVerdict can
// recover it even when the model wraps it in prose or markdown fences.
const classifyPrompt = `You are a sentiment classifier. Classify the overall polarity of the text below.
Respond with exactly one JSON object of the form {"label": "POSITIVE" or "NEGATIVE", "score": <confidence between 0 and 1>} and nothing else.

Text:
%s`

// parseVerdict extracts the verdict JSON object from a model response,
// tolerating surrounding text. It normalizes the label to upper case and
// clamps the score into [0,1].
func parseVerdict(response string) (Verdict, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return Verdict{}, fmt.Errorf("no JSON object in classifier response")
	}

	var v Verdict
	if err := json.Unmarshal([]byte(response[start:end+1]), &v); err != nil {
		return Verdict{}, fmt.Errorf("failed to unmarshal classifier verdict: %w", err)
	}

	v.Label = strings.ToUpper(strings.TrimSpace(v.Label))
	if v.Label != "POSITIVE" && v.Label != "NEGATIVE" {
		return Verdict{}, fmt.Errorf("unexpected classifier label %q", v.Label)
	}
	if v.Score < 0 {
		v.Score = 0
	}
	if v.Score > 1 {
		v.Score = 1
	}
	return v, nil
}
