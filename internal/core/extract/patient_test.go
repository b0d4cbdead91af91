package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatientInfo_TitleName(t *testing.T) {
	e := NewPatientInfoExtractor()

	info := e.Extract("Good morning, Ms. Jones. How have you been?")
	assert.Equal(t, "Ms. Jones", info.PatientName)
}

func TestPatientInfo_SelfIntroducedName(t *testing.T) {
	e := NewPatientInfoExtractor()

	info := e.Extract("My name is Janet Jones and I was in an accident.")
	assert.Equal(t, "Janet Jones", info.PatientName)
}

func TestPatientInfo_FirstNamePatternWins(t *testing.T) {
	e := NewPatientInfoExtractor()

	// The title pattern is tried first, so the self-introduction never runs.
	info := e.Extract("My name is Janet Jones. They call me Ms. Smith at work.")
	assert.Equal(t, "Ms. Smith", info.PatientName)
}

func TestPatientInfo_MonthDateBeatsClockTime(t *testing.T) {
	e := NewPatientInfoExtractor()

	// The clock time appears earlier in the text, but the month pattern is
	// tried first.
	info := e.Extract("It happened around 12:30 pm on September 1st.")
	assert.Equal(t, "September 1st", info.IncidentDate)
}

func TestPatientInfo_ClockTimeFallback(t *testing.T) {
	e := NewPatientInfoExtractor()

	info := e.Extract("It happened at 12:30 pm in traffic.")
	assert.Equal(t, "12:30 pm", info.IncidentDate)
}

func TestPatientInfo_IncidentType(t *testing.T) {
	e := NewPatientInfoExtractor()

	assert.Equal(t, "Car accident", e.Extract("I was in a car accident.").IncidentType)
	assert.Equal(t, "Accident", e.Extract("I had a workplace accident.").IncidentType)
	assert.Empty(t, e.Extract("I fell down the stairs.").IncidentType)
}

func TestPatientInfo_NoSignals(t *testing.T) {
	e := NewPatientInfoExtractor()

	info := e.Extract("Nothing identifying here.")
	assert.Empty(t, info.PatientName)
	assert.Empty(t, info.IncidentDate)
	assert.Empty(t, info.IncidentType)
}
