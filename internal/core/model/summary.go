package model

// EntitySet holds the lexicon hits found in a transcript, one set per
// category. Values are lowercase and sorted; duplicates are collapsed.
// Prognosis holds whole sentences rather than spans.
type EntitySet struct {
	Symptoms   []string `json:"symptoms"`
	Treatments []string `json:"treatments"`
	Diagnoses  []string `json:"diagnosis"`
	Prognosis  []string `json:"prognosis"`
}

// PatientInfo is the output of the patient-detail extractor. Every field is
// independently optional; an empty string means no pattern fired.
type PatientInfo struct {
	PatientName  string `json:"patient_name,omitempty"`
	IncidentDate string `json:"incident_date,omitempty"`
	IncidentType string `json:"incident_type,omitempty"`
}

// TemporalInfo carries duration and status signals. TreatmentDuration keeps
// every "<n> <unit>" match in text order; Timeframe keeps only the first.
type TemporalInfo struct {
	TreatmentDuration []string `json:"treatment_duration,omitempty"`
	Timeframe         string   `json:"timeframe,omitempty"`
	CurrentStatus     string   `json:"current_status,omitempty"`
}

// StructuredSummary is the fixed-schema report produced from a transcript.
type StructuredSummary struct {
	PatientName   string   `json:"Patient_Name"`
	Symptoms      []string `json:"Symptoms"`
	Diagnosis     string   `json:"Diagnosis"`
	Treatment     []string `json:"Treatment"`
	CurrentStatus string   `json:"Current_Status"`
	Prognosis     string   `json:"Prognosis"`
}

// DefaultSummary returns the summary used when the transcript carries no
// signal at all (including empty input). Every field is populated so the
// JSON schema never has holes.
func DefaultSummary() StructuredSummary {
	return StructuredSummary{
		PatientName:   "Unknown",
		Symptoms:      []string{"Not specified"},
		Diagnosis:     "Not specified",
		Treatment:     []string{"Not specified"},
		CurrentStatus: "Under observation",
		Prognosis:     "Not specified",
	}
}
