package dto

// Request DTOs

type SuggestionRequest struct {
	Symptoms []string `json:"symptoms" validate:"required,min=1,dive,required"`
}

// Response DTOs

type SymptomSuggestion struct {
	Symptom             string   `json:"symptom"`
	PossibleDiagnoses   []string `json:"possible_diagnoses"`
	SuggestedTreatments []string `json:"suggested_treatments"`
	RecommendedTests    []string `json:"recommended_tests"`
}

type SuggestionResponse struct {
	Treatments []SymptomSuggestion `json:"treatments"`
}
