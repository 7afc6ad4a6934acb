package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"survey-translation-service/models"
)

// ExtractJSON strips markdown fences and prose around the model's reply.
// It removes a leading ```json or ``` marker and a trailing ``` marker,
// then slices between the first '{' and the last '}'. Text with no brace
// pair passes through trimmed.
func ExtractJSON(response string) string {
	cleaned := strings.TrimSpace(response)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[len("```json"):]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[len("```"):]
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = cleaned[:len(cleaned)-len("```")]
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end != -1 && end > start {
		return cleaned[start : end+1]
	}

	return strings.TrimSpace(cleaned)
}

// ParseTranslationResponse parses sanitized text as a full translation
// response. A reply without a translated survey, or with a survey that
// violates the required-field invariants, is a parse failure.
func ParseTranslationResponse(text string) (*models.TranslationResponse, error) {
	var response models.TranslationResponse
	if err := json.Unmarshal([]byte(text), &response); err != nil {
		return nil, fmt.Errorf("failed to parse translation response: %w", err)
	}

	if response.TranslatedSurvey == nil {
		return nil, fmt.Errorf("translation response has no translated survey")
	}
	if errs := response.TranslatedSurvey.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("translated survey failed validation: %s", strings.Join(errs, "; "))
	}

	return &response, nil
}

// ParseSurvey parses sanitized text as a bare survey object, the legacy
// reply shape used as the fallback when full-response parsing fails.
func ParseSurvey(text string) (*models.Survey, error) {
	var survey models.Survey
	if err := json.Unmarshal([]byte(text), &survey); err != nil {
		return nil, fmt.Errorf("failed to parse survey: %w", err)
	}

	if errs := survey.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("survey failed validation: %s", strings.Join(errs, "; "))
	}

	return &survey, nil
}
