package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"survey-translation-service/models"
)

// Build turns a translation request into the single user-role instruction
// sent to the model. It is deterministic and does no I/O; the only failure
// mode is the survey not serializing to JSON.
func Build(request *models.TranslationRequest) (string, error) {
	surveyJSON, err := json.Marshal(request.Survey)
	if err != nil {
		return "", fmt.Errorf("failed to serialize survey: %w", err)
	}

	var b strings.Builder

	b.WriteString("You are a professional translator specializing in survey localization. ")
	b.WriteString("Your task is to translate all text content in the provided survey from ")
	b.WriteString(request.SourceLanguage)
	b.WriteString(" to ")
	b.WriteString(request.TargetLanguage)
	b.WriteString(". ")

	b.WriteString("\nTranslation Guidelines:\n")
	b.WriteString("1. Maintain the exact JSON structure and field names\n")
	b.WriteString("2. Translate all human-readable text content including:\n")
	b.WriteString("   - Survey title\n")
	b.WriteString("   - Introduction block (title, description, welcome message, instructions)\n")
	b.WriteString("   - Section titles and descriptions\n")
	b.WriteString("   - Category names and descriptions\n")
	b.WriteString("   - Question texts and descriptions\n")
	b.WriteString("   - Choice texts\n")
	b.WriteString("   - Footer content (thank you message, button text, contact info, additional instructions)\n")

	if opts := request.Options; opts != nil {
		if opts.TranslateChoiceValues != nil && *opts.TranslateChoiceValues {
			b.WriteString("   - Choice values (when they are human-readable)\n")
		}
		if opts.TranslateValidationMessages != nil && *opts.TranslateValidationMessages {
			b.WriteString("   - Validation error messages\n")
		}
		if opts.Tone != "" {
			b.WriteString("3. Use a ")
			b.WriteString(opts.Tone)
			b.WriteString(" tone\n")
		}
		if opts.Context != "" {
			b.WriteString("4. Context: ")
			b.WriteString(opts.Context)
			b.WriteString("\n")
		}
	}

	b.WriteString("\nDO NOT translate:\n")
	b.WriteString("- Field names/keys\n")
	b.WriteString("- Technical values (IDs, enum values, etc.)\n")
	b.WriteString("- Timestamps or metadata\n")
	b.WriteString("- Choice values that are technical codes\n")

	b.WriteString("\nReturn ONLY the translated JSON object with the same structure.")

	b.WriteString("\n\nSurvey to translate:\n")
	b.Write(surveyJSON)

	return b.String(), nil
}
