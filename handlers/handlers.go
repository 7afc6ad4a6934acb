package handlers

import (
	"net/http"
	"time"

	"survey-translation-service/database"
	"survey-translation-service/models"
	"survey-translation-service/service"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// Handlers represents the HTTP handlers
type Handlers struct {
	service *service.Service
	db      *database.Database // nil when the survey store is not configured
}

// NewHandlers creates new HTTP handlers
func NewHandlers(svc *service.Service, db *database.Database) *Handlers {
	return &Handlers{service: svc, db: db}
}

// ErrorResponse is the body of validation and internal-error replies.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Details   []string  `json:"details,omitempty"`
}

func validationError(c *gin.Context, message string, details []string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Timestamp: time.Now(),
		Status:    http.StatusBadRequest,
		Error:     "Validation Failed",
		Message:   message,
		Details:   details,
	})
}

// HealthCheck handles health check requests
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "survey-translation-service",
	})
}

// TranslateSurvey handles POST /api/v1/surveys/translate. Failures are
// logged server-side and surfaced as a bare 500.
func (h *Handlers) TranslateSurvey(c *gin.Context) {
	var request models.TranslationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, "Request body is not valid JSON", []string{err.Error()})
		return
	}
	if errs := request.Validate(); len(errs) > 0 {
		validationError(c, "Request validation failed", errs)
		return
	}

	log.WithFields(log.Fields{
		"source": request.SourceLanguage,
		"target": request.TargetLanguage,
	}).Info("received translation request")

	response, err := h.service.Translate(&request)
	if err != nil {
		log.WithError(err).Error("translation failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}

// TranslateSurveyAsync handles POST /api/v1/surveys/translate/async. The
// translation runs detached; the returned job id cannot be polled and the
// eventual result is not retrievable. Always replies 202 for valid input.
func (h *Handlers) TranslateSurveyAsync(c *gin.Context) {
	var request models.TranslationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, "Request body is not valid JSON", []string{err.Error()})
		return
	}
	if errs := request.Validate(); len(errs) > 0 {
		validationError(c, "Request validation failed", errs)
		return
	}

	log.WithFields(log.Fields{
		"source": request.SourceLanguage,
		"target": request.TargetLanguage,
	}).Info("received async translation request")

	job := h.service.TranslateAsync(&request)
	c.JSON(http.StatusAccepted, job)
}

// GetSupportedLanguages handles GET /api/v1/surveys/translate/languages
func (h *Handlers) GetSupportedLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, models.SupportedLanguagesResponse{
		SupportedLanguages: models.SupportedLanguages(),
	})
}
