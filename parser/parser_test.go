package parser

import (
	"strings"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected string
	}{
		{
			name:     "json fence",
			response: "```json\n{\"a\":1}\n```",
			expected: `{"a":1}`,
		},
		{
			name:     "bare fence",
			response: "```\n{\"a\":1}\n```",
			expected: `{"a":1}`,
		},
		{
			name:     "no fence",
			response: `{"a":1}`,
			expected: `{"a":1}`,
		},
		{
			name:     "json wrapped in prose",
			response: "Here is the translation:\n{\"a\":1}\nHope this helps!",
			expected: `{"a":1}`,
		},
		{
			name:     "no braces passes through trimmed",
			response: "  no json here  ",
			expected: "no json here",
		},
		{
			name:     "fence with surrounding whitespace",
			response: "\n\n```json\n{\n  \"a\": 1\n}\n```\n",
			expected: "{\n  \"a\": 1\n}",
		},
		{
			name:     "nested braces keep outermost pair",
			response: "prefix {\"a\":{\"b\":2}} suffix",
			expected: `{"a":{"b":2}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractJSON(tt.response)
			if got != tt.expected {
				t.Errorf("ExtractJSON() = %q, want %q", got, tt.expected)
			}
		})
	}
}

const validSurveyJSON = `{
	"title": "Customer Satisfaction",
	"language": "en",
	"introductionBlock": {"title": "Welcome"},
	"contentBlock": {
		"sections": [
			{
				"title": "General",
				"categories": [
					{
						"name": "Experience",
						"questions": [
							{"questionText": "How satisfied are you?", "type": "RATING"}
						]
					}
				]
			}
		]
	}
}`

func TestParseTranslationResponse(t *testing.T) {
	full := `{
		"translatedSurvey": ` + validSurveyJSON + `,
		"sourceLanguage": "en",
		"targetLanguage": "es",
		"metadata": {"translationModel": "gpt-4o", "isComplete": true}
	}`

	response, err := ParseTranslationResponse(full)
	if err != nil {
		t.Fatalf("ParseTranslationResponse() error = %v", err)
	}
	if response.TranslatedSurvey.Title != "Customer Satisfaction" {
		t.Errorf("TranslatedSurvey.Title = %q", response.TranslatedSurvey.Title)
	}
	if response.TargetLanguage != "es" {
		t.Errorf("TargetLanguage = %q, want es", response.TargetLanguage)
	}
}

func TestParseTranslationResponseErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantMsg string
	}{
		{
			name:    "malformed JSON",
			text:    `{"translatedSurvey": `,
			wantMsg: "failed to parse",
		},
		{
			name:    "missing translated survey",
			text:    `{"sourceLanguage": "en", "targetLanguage": "es"}`,
			wantMsg: "no translated survey",
		},
		{
			name:    "survey violating invariants",
			text:    `{"translatedSurvey": {"title": "", "language": "es"}}`,
			wantMsg: "failed validation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTranslationResponse(tt.text)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParseSurvey(t *testing.T) {
	survey, err := ParseSurvey(validSurveyJSON)
	if err != nil {
		t.Fatalf("ParseSurvey() error = %v", err)
	}
	if survey.Title != "Customer Satisfaction" {
		t.Errorf("Title = %q", survey.Title)
	}
	if len(survey.ContentBlock.Sections) != 1 {
		t.Errorf("got %d sections, want 1", len(survey.ContentBlock.Sections))
	}
}

func TestParseSurveyRejectsInvalid(t *testing.T) {
	// A full translation response parsed as a bare survey has none of the
	// required fields populated, so the fallback must not accept it.
	full := `{"translatedSurvey": ` + validSurveyJSON + `, "sourceLanguage": "en"}`
	if _, err := ParseSurvey(full); err == nil {
		t.Fatal("expected validation error for non-survey JSON")
	}

	if _, err := ParseSurvey(`{"title": "Only a title"}`); err == nil {
		t.Fatal("expected validation error for survey missing required blocks")
	}
}
