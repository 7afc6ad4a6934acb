// Package stubllm provides a no-network chat provider for development and
// CI runs without an API credential. It returns a fixed, schema-valid
// translation response so the full parse + metadata path is exercised.
package stubllm

import (
	"survey-translation-service/llm"
	"survey-translation-service/schema"
)

const stubResponse = `{
  "translatedSurvey": {
    "title": "Encuesta de Ejemplo",
    "language": "es",
    "introductionBlock": {
      "title": "Título de Introducción",
      "description": "Descripción traducida",
      "welcomeMessage": "Mensaje de bienvenida traducido",
      "instructions": ["Instrucción 1", "Instrucción 2"]
    },
    "contentBlock": {
      "sections": [
        {
          "title": "Sección Traducida",
          "description": "Descripción de la sección",
          "categories": [
            {
              "name": "Categoría Traducida",
              "description": "Descripción de categoría",
              "questions": [
                {
                  "questionText": "¿Pregunta traducida?",
                  "description": "Descripción de pregunta",
                  "type": "SINGLE_CHOICE",
                  "choices": [
                    {"text": "Opción 1 traducida", "value": "option1"},
                    {"text": "Opción 2 traducida", "value": "option2"}
                  ]
                }
              ]
            }
          ]
        }
      ]
    },
    "footerBlock": {
      "thankYouMessage": "Mensaje de agradecimiento",
      "submitButtonText": "Enviar",
      "contactInformation": "Información de contacto",
      "additionalInstructions": ["Instrucción adicional 1"]
    }
  },
  "sourceLanguage": "en",
  "targetLanguage": "es",
  "metadata": {
    "translatedAt": "2024-01-01T12:00:00Z",
    "translationModel": "stub",
    "totalTextBlocks": 10,
    "translatedBlocks": 10,
    "confidenceScore": 0.95,
    "processingTimeMs": 1000,
    "isComplete": true,
    "translationNotes": {"model": "stub"}
  }
}`

// Client is a deterministic offline provider. Selected explicitly in main
// when no OpenAI credential is configured.
type Client struct{}

func NewClient() *Client { return &Client{} }

func (c *Client) ModelName() string { return "stub" }

// Chat ignores the prompt and schema constraint and returns the canned
// translation document with synthetic token accounting.
func (c *Client) Chat(prompt string, format *schema.ResponseFormat) (*llm.ChatResult, error) {
	return &llm.ChatResult{
		Text:         stubResponse,
		FinishReason: "stop",
		Usage: llm.TokenUsage{
			PromptTokens:     100,
			CompletionTokens: 200,
			TotalTokens:      300,
		},
	}, nil
}
