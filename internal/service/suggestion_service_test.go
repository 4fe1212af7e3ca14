package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreatmentSuggestions_KnownSymptom(t *testing.T) {
	svc := NewSuggestionService(rand.New(rand.NewSource(1)))

	suggestions := svc.TreatmentSuggestions([]string{"fever"})

	assert.Len(t, suggestions, 1)
	assert.Equal(t, "fever", suggestions[0].Symptom)
	assert.Contains(t, suggestions[0].SuggestedTreatments, "Fluid therapy")
	assert.Contains(t, suggestions[0].SuggestedTreatments, "Rest")
}

func TestTreatmentSuggestions_CaseInsensitive(t *testing.T) {
	svc := NewSuggestionService(rand.New(rand.NewSource(1)))

	suggestions := svc.TreatmentSuggestions([]string{"Fever"})

	assert.Equal(t, "Fever", suggestions[0].Symptom)
	assert.Contains(t, suggestions[0].SuggestedTreatments, "Antipyretics (e.g., Paracetamol)")
}

func TestTreatmentSuggestions_UnknownSymptom(t *testing.T) {
	svc := NewSuggestionService(rand.New(rand.NewSource(1)))

	suggestions := svc.TreatmentSuggestions([]string{"glowing"})

	assert.Len(t, suggestions, 1)
	// No mapped treatments, only sampled common medications can appear
	for _, treatment := range suggestions[0].SuggestedTreatments {
		assert.Contains(t, commonMedications, treatment)
	}
	for _, diagnosis := range suggestions[0].PossibleDiagnoses {
		assert.Contains(t, commonDiagnoses, diagnosis)
	}
	for _, test := range suggestions[0].RecommendedTests {
		assert.Contains(t, commonTests, test)
	}
}

func TestTreatmentSuggestions_OnePerSymptom(t *testing.T) {
	svc := NewSuggestionService(rand.New(rand.NewSource(1)))

	suggestions := svc.TreatmentSuggestions([]string{"vomiting", "diarrhea", "lethargy"})

	assert.Len(t, suggestions, 3)
	assert.Equal(t, "vomiting", suggestions[0].Symptom)
	assert.Equal(t, "diarrhea", suggestions[1].Symptom)
	assert.Equal(t, "lethargy", suggestions[2].Symptom)
}

func TestTreatmentSuggestions_Deterministic(t *testing.T) {
	first := NewSuggestionService(rand.New(rand.NewSource(42))).TreatmentSuggestions([]string{"itching"})
	second := NewSuggestionService(rand.New(rand.NewSource(42))).TreatmentSuggestions([]string{"itching"})

	assert.Equal(t, first, second)
}

func TestTreatmentSuggestions_Empty(t *testing.T) {
	svc := NewSuggestionService(rand.New(rand.NewSource(1)))

	assert.Empty(t, svc.TreatmentSuggestions(nil))
}
