// Package schema builds the response_format constraint attached to chat
// requests so the model emits JSON matching the translation response shape.
// The descriptor depends on nothing in the request, so it is built once per
// process and shared.
package schema

import "sync"

// ResponseFormat is the chat-completions response_format wire object.
type ResponseFormat struct {
	Type       string     `json:"type"`
	JSONSchema JSONSchema `json:"json_schema"`
}

// JSONSchema names and carries the schema body.
type JSONSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Schema      map[string]any `json:"schema"`
}

var (
	once   sync.Once
	cached *ResponseFormat
)

// TranslationResponseFormat returns the schema descriptor for the full
// translation response. Callers must treat the returned value as read-only.
func TranslationResponseFormat() *ResponseFormat {
	once.Do(func() {
		cached = &ResponseFormat{
			Type: "json_schema",
			JSONSchema: JSONSchema{
				Name:        "SurveyTranslationResponse",
				Description: "Response containing the translated survey and metadata",
				Schema:      translationResponseSchema(),
			},
		}
	})
	return cached
}

func translationResponseSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"translatedSurvey": surveySchema(),
			"sourceLanguage":   stringProperty("The source language of the survey"),
			"targetLanguage":   stringProperty("The target language for translation"),
			"metadata":         metadataSchema(),
		},
		"required": []string{"translatedSurvey", "sourceLanguage", "targetLanguage", "metadata"},
	}
}

func surveySchema() map[string]any {
	return map[string]any{
		"type":        "object",
		"description": "The translated survey object",
		"properties": map[string]any{
			"title":             stringProperty("Survey title"),
			"language":          stringProperty("Survey language"),
			"introductionBlock": introductionBlockSchema(),
			"contentBlock":      contentBlockSchema(),
			"footerBlock":       footerBlockSchema(),
		},
	}
}

func introductionBlockSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":          stringProperty("Introduction title"),
			"description":    stringProperty("Introduction description"),
			"welcomeMessage": stringProperty("Welcome message"),
			"instructions":   stringArrayProperty("List of instructions"),
		},
	}
}

func contentBlockSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sections": map[string]any{
				"type":  "array",
				"items": sectionSchema(),
			},
		},
	}
}

func sectionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       stringProperty("Section title"),
			"description": stringProperty("Section description"),
			"categories": map[string]any{
				"type":  "array",
				"items": categorySchema(),
			},
		},
	}
}

func categorySchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":        stringProperty("Category name"),
			"description": stringProperty("Category description"),
			"questions": map[string]any{
				"type":  "array",
				"items": questionSchema(),
			},
		},
	}
}

func questionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questionText": stringProperty("Question text"),
			"description":  stringProperty("Question description"),
			"type":         stringProperty("Question type"),
			"choices": map[string]any{
				"type":  "array",
				"items": choiceSchema(),
			},
		},
	}
}

func choiceSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text":  stringProperty("Choice text"),
			"value": stringProperty("Choice value"),
		},
	}
}

func footerBlockSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"thankYouMessage":        stringProperty("Thank you message"),
			"submitButtonText":       stringProperty("Submit button text"),
			"contactInformation":     stringProperty("Contact information"),
			"additionalInstructions": stringArrayProperty("Additional instructions"),
		},
	}
}

func metadataSchema() map[string]any {
	return map[string]any{
		"type":        "object",
		"description": "Metadata about the translation process",
		"properties": map[string]any{
			"translatedAt":     stringProperty("Timestamp of translation"),
			"translationModel": stringProperty("AI model used for translation"),
			"totalTextBlocks":  numberProperty("Total number of text blocks"),
			"translatedBlocks": numberProperty("Number of translated blocks"),
			"confidenceScore":  numberProperty("Confidence score of translation"),
			"processingTimeMs": numberProperty("Processing time in milliseconds"),
			"isComplete":       booleanProperty("Whether translation is complete"),
			"translationNotes": map[string]any{
				"type":                 "object",
				"description":          "Additional notes about the translation",
				"additionalProperties": true,
			},
		},
	}
}

func stringProperty(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func numberProperty(description string) map[string]any {
	return map[string]any{"type": "number", "description": description}
}

func booleanProperty(description string) map[string]any {
	return map[string]any{"type": "boolean", "description": description}
}

func stringArrayProperty(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": description,
		"items":       map[string]any{"type": "string"},
	}
}
