package extract

import (
	"regexp"
	"strings"

	"github.com/medassist/scribe/internal/core/model"
)

var (
	durationPattern = regexp.MustCompile(`(\d+)\s+(week|weeks|month|months|day|days|session|sessions)`)

	timeframePatterns = []*regexp.Regexp{
		regexp.MustCompile(`within\s+(\d+)\s+(week|weeks|month|months|day|days)`),
		regexp.MustCompile(`in\s+(\d+)\s+(week|weeks|month|months|day|days)`),
	}
)

// TemporalInfoExtractor pulls duration, timeframe, and current-status
// signals. Durations are a collect-all pass over the whole text; the
// timeframe stops at the first pattern that fires.
type TemporalInfoExtractor struct{}

func NewTemporalInfoExtractor() *TemporalInfoExtractor {
	return &TemporalInfoExtractor{}
}

func (e *TemporalInfoExtractor) Extract(text string) model.TemporalInfo {
	var info model.TemporalInfo
	lower := strings.ToLower(text)

	for _, m := range durationPattern.FindAllStringSubmatch(lower, -1) {
		info.TreatmentDuration = append(info.TreatmentDuration, m[1]+" "+m[2])
	}

	for _, p := range timeframePatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			info.Timeframe = m[1] + " " + m[2]
			break
		}
	}

	// Fixed priority: occasional beats resolved beats ongoing.
	switch {
	case strings.Contains(lower, "occasional"):
		info.CurrentStatus = "Occasional symptoms"
	case strings.Contains(lower, "no longer") || strings.Contains(lower, "resolved"):
		info.CurrentStatus = "Resolved"
	case strings.Contains(lower, "still") || strings.Contains(lower, "continuing"):
		info.CurrentStatus = "Ongoing"
	}

	return info
}
