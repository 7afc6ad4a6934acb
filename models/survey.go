package models

import (
	"fmt"
	"time"
)

// QuestionType is the closed set of supported question kinds.
type QuestionType string

const (
	SingleChoice   QuestionType = "SINGLE_CHOICE"
	MultipleChoice QuestionType = "MULTIPLE_CHOICE"
	Text           QuestionType = "TEXT"
	Number         QuestionType = "NUMBER"
	Email          QuestionType = "EMAIL"
	Date           QuestionType = "DATE"
	Rating         QuestionType = "RATING"
	Boolean        QuestionType = "BOOLEAN"
)

// Valid reports whether t is one of the declared question types.
func (t QuestionType) Valid() bool {
	switch t {
	case SingleChoice, MultipleChoice, Text, Number, Email, Date, Rating, Boolean:
		return true
	}
	return false
}

// Survey is the structured questionnaire document being translated.
// Surveys arrive as JSON on the wire and are validated explicitly with
// Validate rather than through binding annotations.
type Survey struct {
	ID                string             `json:"id,omitempty"`
	Title             string             `json:"title"`
	Language          string             `json:"language"`
	IntroductionBlock *IntroductionBlock `json:"introductionBlock"`
	ContentBlock      *ContentBlock      `json:"contentBlock"`
	FooterBlock       *FooterBlock       `json:"footerBlock,omitempty"`
	CreatedAt         *time.Time         `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time         `json:"updatedAt,omitempty"`
	CreatedBy         string             `json:"createdBy,omitempty"`
}

type IntroductionBlock struct {
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	WelcomeMessage string   `json:"welcomeMessage,omitempty"`
	Instructions   []string `json:"instructions,omitempty"`
}

type ContentBlock struct {
	Sections []Section `json:"sections"`
}

type Section struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Order       *int       `json:"order,omitempty"`
	Categories  []Category `json:"categories,omitempty"`
}

type Category struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Order       *int       `json:"order,omitempty"`
	Questions   []Question `json:"questions"`
}

type Question struct {
	QuestionText    string           `json:"questionText"`
	Type            QuestionType     `json:"type"`
	Description     string           `json:"description,omitempty"`
	Order           *int             `json:"order,omitempty"`
	Required        *bool            `json:"required,omitempty"`
	Choices         []Choice         `json:"choices,omitempty"`
	ValidationRules *ValidationRules `json:"validationRules,omitempty"`
}

type Choice struct {
	Text      string `json:"text"`
	Value     string `json:"value,omitempty"`
	Order     *int   `json:"order,omitempty"`
	IsDefault *bool  `json:"isDefault,omitempty"`
}

type ValidationRules struct {
	MinLength    *int   `json:"minLength,omitempty"`
	MaxLength    *int   `json:"maxLength,omitempty"`
	MinValue     *int   `json:"minValue,omitempty"`
	MaxValue     *int   `json:"maxValue,omitempty"`
	Pattern      string `json:"pattern,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

type FooterBlock struct {
	ThankYouMessage        string   `json:"thankYouMessage,omitempty"`
	SubmitButtonText       string   `json:"submitButtonText,omitempty"`
	ContactInformation     string   `json:"contactInformation,omitempty"`
	AdditionalInstructions []string `json:"additionalInstructions,omitempty"`
}

// Validate checks the required-field invariants and returns one message per
// violation. An empty slice means the survey is acceptable as translation
// input or as parsed translation output.
func (s *Survey) Validate() []string {
	var errs []string

	if s.Title == "" {
		errs = append(errs, "Survey title is required")
	}
	if s.Language == "" {
		errs = append(errs, "Language is required")
	}

	if s.IntroductionBlock == nil {
		errs = append(errs, "Introduction block is required")
	} else if s.IntroductionBlock.Title == "" {
		errs = append(errs, "Introduction title is required")
	}

	if s.ContentBlock == nil {
		errs = append(errs, "Content block is required")
	} else if len(s.ContentBlock.Sections) == 0 {
		errs = append(errs, "At least one section is required")
	} else {
		for i, section := range s.ContentBlock.Sections {
			if section.Title == "" {
				errs = append(errs, fmt.Sprintf("Section %d: title is required", i+1))
			}
			for j, category := range section.Categories {
				if category.Name == "" {
					errs = append(errs, fmt.Sprintf("Section %d, category %d: name is required", i+1, j+1))
				}
				if len(category.Questions) == 0 {
					errs = append(errs, fmt.Sprintf("Section %d, category %d: at least one question is required", i+1, j+1))
					continue
				}
				for k, question := range category.Questions {
					if question.QuestionText == "" {
						errs = append(errs, fmt.Sprintf("Section %d, category %d, question %d: question text is required", i+1, j+1, k+1))
					}
					if !question.Type.Valid() {
						errs = append(errs, fmt.Sprintf("Section %d, category %d, question %d: invalid question type %q", i+1, j+1, k+1, question.Type))
					}
					for l, choice := range question.Choices {
						if choice.Text == "" {
							errs = append(errs, fmt.Sprintf("Section %d, category %d, question %d, choice %d: text is required", i+1, j+1, k+1, l+1))
						}
					}
				}
			}
		}
	}

	return errs
}
