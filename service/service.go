package service

import (
	"fmt"
	"math/rand"
	"time"

	"survey-translation-service/llm"
	"survey-translation-service/metrics"
	"survey-translation-service/models"
	"survey-translation-service/parser"
	"survey-translation-service/prompt"
	"survey-translation-service/schema"

	"github.com/apex/log"
)

const (
	successConfidence = 0.95

	// Fixed estimate returned by the async endpoint; there is no job
	// tracking behind it.
	asyncEstimateMs = 30000
)

// TranslationError is any unrecoverable failure during prompt building,
// provider invocation, or response parsing.
type TranslationError struct {
	Phase string // "prompt", "chat" or "parse"
	Err   error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation failed during %s: %v", e.Phase, e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }

// Service orchestrates survey translations against a chat-completion
// provider. It holds no per-request state and is safe for concurrent use.
type Service struct {
	client llm.Client
}

// NewService creates a translation service backed by the given provider.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Translate runs the full pipeline: build the prompt, invoke the provider
// with the structured-output constraint, sanitize and parse the reply
// (falling back to the bare-survey shape once), then attach freshly
// computed metadata. The provider's own timeout is the only time bound.
func (s *Service) Translate(request *models.TranslationRequest) (*models.TranslationResponse, error) {
	start := time.Now()

	metrics.TranslationsInFlight.Inc()
	defer metrics.TranslationsInFlight.Dec()

	logger := log.WithFields(log.Fields{
		"source": request.SourceLanguage,
		"target": request.TargetLanguage,
	})
	logger.Info("starting survey translation")

	userPrompt, err := prompt.Build(request)
	if err != nil {
		s.observeFailure(start)
		return nil, &TranslationError{Phase: "prompt", Err: err}
	}

	llmStart := time.Now()
	result, err := s.client.Chat(userPrompt, schema.TranslationResponseFormat())
	metrics.LLMRequestDurationSeconds.Observe(time.Since(llmStart).Seconds())
	if err != nil {
		s.observeFailure(start)
		logger.WithError(err).Error("chat-completion call failed")
		return nil, &TranslationError{Phase: "chat", Err: err}
	}

	logger.WithFields(log.Fields{
		"finish_reason": result.FinishReason,
		"total_tokens":  result.Usage.TotalTokens,
	}).Debug("chat-completion reply received")

	cleaned := parser.ExtractJSON(result.Text)

	response, parseErr := parser.ParseTranslationResponse(cleaned)
	if parseErr != nil {
		logger.WithError(parseErr).Warn("falling back to legacy survey parsing")
		survey, fallbackErr := parser.ParseSurvey(cleaned)
		if fallbackErr != nil {
			s.observeFailure(start)
			logger.WithError(fallbackErr).Error("failed to parse model reply")
			return nil, &TranslationError{Phase: "parse", Err: fallbackErr}
		}
		response = &models.TranslationResponse{TranslatedSurvey: survey}
	}

	// Never trust the model's echo of languages or metadata.
	now := time.Now()
	response.TranslatedSurvey.Language = request.TargetLanguage
	response.TranslatedSurvey.UpdatedAt = &now
	response.SourceLanguage = request.SourceLanguage
	response.TargetLanguage = request.TargetLanguage
	response.Metadata = s.buildMetadata(request, start, time.Now(), true)

	elapsed := time.Since(start)
	metrics.TranslationsTotal.WithLabelValues("success").Inc()
	metrics.TranslationDurationSeconds.WithLabelValues("success").Observe(elapsed.Seconds())
	logger.WithField("duration", elapsed).Info("translation completed")

	return response, nil
}

// TranslateAsync dispatches a fire-and-forget translation and returns a
// synthetic job id immediately. The result is not retrievable by job id;
// this limitation is part of the endpoint contract.
func (s *Service) TranslateAsync(request *models.TranslationRequest) *models.TranslationJobResponse {
	jobID := fmt.Sprintf("job_%d_%d", time.Now().UnixMilli(), rand.Intn(1000))

	metrics.AsyncJobsSubmittedTotal.Inc()

	go func() {
		if _, err := s.Translate(request); err != nil {
			log.WithField("job_id", jobID).WithError(err).Error("async translation failed")
			return
		}
		log.WithField("job_id", jobID).Info("async translation completed")
	}()

	return &models.TranslationJobResponse{
		JobID:                     jobID,
		Status:                    "PROCESSING",
		EstimatedCompletionTimeMs: asyncEstimateMs,
	}
}

func (s *Service) observeFailure(start time.Time) {
	metrics.TranslationsTotal.WithLabelValues("failure").Inc()
	metrics.TranslationDurationSeconds.WithLabelValues("failure").Observe(time.Since(start).Seconds())
}

// buildMetadata computes accounting over the original request survey, not
// the translated one.
func (s *Service) buildMetadata(request *models.TranslationRequest, start, end time.Time, complete bool) models.TranslationMetadata {
	notes := map[string]string{
		"model": s.client.ModelName(),
	}
	if opts := request.Options; opts != nil {
		if opts.Tone != "" {
			notes["tone"] = opts.Tone
		}
		if opts.Context != "" {
			notes["context"] = opts.Context
		}
	}

	total := CountTextBlocks(request.Survey)

	translated := 0
	confidence := 0.0
	if complete {
		translated = total
		confidence = successConfidence
	}

	return models.TranslationMetadata{
		TranslatedAt:     time.Now(),
		TranslationModel: s.client.ModelName(),
		TotalTextBlocks:  total,
		TranslatedBlocks: translated,
		ConfidenceScore:  confidence,
		ProcessingTimeMs: end.Sub(start).Milliseconds(),
		TranslationNotes: notes,
		IsComplete:       complete,
	}
}

// CountTextBlocks counts every translatable leaf string in the survey tree.
// String-array fields contribute one count per element; absent fields
// contribute zero.
func CountTextBlocks(survey *models.Survey) int {
	if survey == nil {
		return 0
	}

	count := 0
	if survey.Title != "" {
		count++
	}

	if intro := survey.IntroductionBlock; intro != nil {
		if intro.Title != "" {
			count++
		}
		if intro.Description != "" {
			count++
		}
		if intro.WelcomeMessage != "" {
			count++
		}
		count += len(intro.Instructions)
	}

	if content := survey.ContentBlock; content != nil {
		for _, section := range content.Sections {
			if section.Title != "" {
				count++
			}
			if section.Description != "" {
				count++
			}
			for _, category := range section.Categories {
				if category.Name != "" {
					count++
				}
				if category.Description != "" {
					count++
				}
				for _, question := range category.Questions {
					if question.QuestionText != "" {
						count++
					}
					if question.Description != "" {
						count++
					}
					for _, choice := range question.Choices {
						if choice.Text != "" {
							count++
						}
					}
					if question.ValidationRules != nil && question.ValidationRules.ErrorMessage != "" {
						count++
					}
				}
			}
		}
	}

	if footer := survey.FooterBlock; footer != nil {
		if footer.ThankYouMessage != "" {
			count++
		}
		if footer.SubmitButtonText != "" {
			count++
		}
		if footer.ContactInformation != "" {
			count++
		}
		count += len(footer.AdditionalInstructions)
	}

	return count
}
