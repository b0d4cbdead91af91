// Package transcript parses speaker-prefixed dialogue text.
package transcript

import "strings"

type Speaker int

const (
	Unknown Speaker = iota
	Physician
	Patient
)

func (s Speaker) String() string {
	switch s {
	case Physician:
		return "Physician"
	case Patient:
		return "Patient"
	default:
		return "Unknown"
	}
}

// Utterance is one attributed line of dialogue.
type Utterance struct {
	Speaker Speaker
	Text    string
}

// Transcript keeps both the parsed utterances and the raw text: statement
// extraction works off the utterances, whole-transcript regex scans run
// over Raw so unattributed lines still count.
type Transcript struct {
	Raw        string
	Utterances []Utterance
}

// Parse splits text on line breaks and a "Speaker:" prefix, matched
// case-insensitively. Lines without a recognized prefix are skipped for
// utterance purposes but remain part of Raw.
func Parse(text string) Transcript {
	t := Transcript{Raw: text}

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		prefix, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		var speaker Speaker
		switch strings.ToLower(strings.TrimSpace(prefix)) {
		case "patient":
			speaker = Patient
		case "physician", "doctor":
			speaker = Physician
		default:
			continue
		}
		if rest = strings.TrimSpace(rest); rest != "" {
			t.Utterances = append(t.Utterances, Utterance{Speaker: speaker, Text: rest})
		}
	}
	return t
}

// PatientStatements returns the text of every patient utterance, in order.
func (t Transcript) PatientStatements() []string {
	var out []string
	for _, u := range t.Utterances {
		if u.Speaker == Patient {
			out = append(out, u.Text)
		}
	}
	return out
}
