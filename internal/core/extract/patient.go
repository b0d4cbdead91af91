package extract

import (
	"regexp"
	"strings"

	"github.com/medassist/scribe/internal/core/model"
)

// Name and date patterns are tried in order; the first pattern that matches
// anywhere in the text wins and later patterns are never consulted. This
// first-match-wins policy is deliberate and differs from the collect-all
// temporal extractor.
var (
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(Ms\.|Mr\.|Mrs\.)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
		regexp.MustCompile(`My name is\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`),
	}

	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:st|nd|rd|th)?`),
		regexp.MustCompile(`(?i)last\s+(January|February|March|April|May|June|July|August|September|October|November|December)`),
		regexp.MustCompile(`(?i)on\s+(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2}(?:st|nd|rd|th)?`),
		regexp.MustCompile(`(?i)(\b\d{1,2}:\d{2}\b\s*(am|pm)?)`),
	}
)

// PatientInfoExtractor pulls the patient's name, the incident date or time,
// and the incident type. Missing signals leave fields empty; this never
// fails.
type PatientInfoExtractor struct{}

func NewPatientInfoExtractor() *PatientInfoExtractor {
	return &PatientInfoExtractor{}
}

func (e *PatientInfoExtractor) Extract(text string) model.PatientInfo {
	var info model.PatientInfo

	for _, p := range namePatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) == 3 {
			info.PatientName = strings.TrimSpace(m[1] + " " + m[2])
		} else {
			info.PatientName = strings.TrimSpace(m[1])
		}
		break
	}

	for _, p := range datePatterns {
		if m := p.FindString(text); m != "" {
			info.IncidentDate = m
			break
		}
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "car accident") {
		info.IncidentType = "Car accident"
	} else if strings.Contains(lower, "accident") {
		info.IncidentType = "Accident"
	}

	return info
}
