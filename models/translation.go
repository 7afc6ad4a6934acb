package models

import "time"

// TranslationRequest is the body of the translate endpoints.
type TranslationRequest struct {
	Survey         *Survey             `json:"survey"`
	SourceLanguage string              `json:"sourceLanguage"`
	TargetLanguage string              `json:"targetLanguage"`
	Options        *TranslationOptions `json:"options,omitempty"`
}

// TranslationOptions tweak the prompt; every field is optional.
type TranslationOptions struct {
	PreserveFormatting          *bool  `json:"preserveFormatting,omitempty"`
	TranslateChoiceValues       *bool  `json:"translateChoiceValues,omitempty"`
	TranslateValidationMessages *bool  `json:"translateValidationMessages,omitempty"`
	Tone                        string `json:"tone,omitempty"`
	Context                     string `json:"context,omitempty"`
}

// Validate returns one message per request-level violation, including the
// nested survey's own invariants.
func (r *TranslationRequest) Validate() []string {
	var errs []string

	if r.Survey == nil {
		errs = append(errs, "Survey data is required")
	} else {
		errs = append(errs, r.Survey.Validate()...)
	}
	if r.SourceLanguage == "" {
		errs = append(errs, "Source language is required")
	}
	if r.TargetLanguage == "" {
		errs = append(errs, "Target language is required")
	}

	return errs
}

// TranslationResponse is returned by the synchronous translate endpoint.
type TranslationResponse struct {
	TranslatedSurvey *Survey             `json:"translatedSurvey"`
	SourceLanguage   string              `json:"sourceLanguage"`
	TargetLanguage   string              `json:"targetLanguage"`
	Metadata         TranslationMetadata `json:"metadata"`
}

// TranslationMetadata is accounting about a single translation run. It is
// always recomputed by the orchestrator; anything the model echoes back in
// this shape is discarded.
type TranslationMetadata struct {
	TranslatedAt     time.Time         `json:"translatedAt"`
	TranslationModel string            `json:"translationModel"`
	TotalTextBlocks  int               `json:"totalTextBlocks"`
	TranslatedBlocks int               `json:"translatedBlocks"`
	ConfidenceScore  float64           `json:"confidenceScore"`
	ProcessingTimeMs int64             `json:"processingTimeMs"`
	TranslationNotes map[string]string `json:"translationNotes"`
	IsComplete       bool              `json:"isComplete"`
}

// TranslationJobResponse is returned by the async translate endpoint. There
// is no job store behind it: the id is synthetic and cannot be polled.
type TranslationJobResponse struct {
	JobID                     string `json:"jobId"`
	Status                    string `json:"status"`
	EstimatedCompletionTimeMs int64  `json:"estimatedCompletionTimeMs"`
}
