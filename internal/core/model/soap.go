package model

// SOAPNote is the four-section clinical note built from a transcript.
type SOAPNote struct {
	Subjective Subjective `json:"Subjective"`
	Objective  Objective  `json:"Objective"`
	Assessment Assessment `json:"Assessment"`
	Plan       Plan       `json:"Plan"`
}

type Subjective struct {
	ChiefComplaint          string   `json:"Chief_Complaint"`
	HistoryOfPresentIllness string   `json:"History_of_Present_Illness"`
	SymptomTimeline         string   `json:"Symptom_Timeline"`
	PatientReportedSymptoms []string `json:"Patient_Reported_Symptoms"`
}

type Objective struct {
	PhysicalExam string `json:"Physical_Exam"`
	Observations string `json:"Observations"`
	TestResults  string `json:"Test_Results"`
}

type Assessment struct {
	Diagnosis          string `json:"Diagnosis"`
	Severity           string `json:"Severity"`
	Prognosis          string `json:"Prognosis"`
	ClinicalImpression string `json:"Clinical_Impression"`
}

type Plan struct {
	Treatment        string `json:"Treatment"`
	Medications      string `json:"Medications"`
	FollowUp         string `json:"Follow_Up"`
	PatientEducation string `json:"Patient_Education"`
}
