package handlers

import (
	"net/http"
	"time"

	"survey-translation-service/database"
	"survey-translation-service/models"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// Survey store endpoints. Registered only when the store is configured;
// the translation flow never touches these.

// SaveSurvey handles POST /api/v1/surveys
func (h *Handlers) SaveSurvey(c *gin.Context) {
	var survey models.Survey
	if err := c.ShouldBindJSON(&survey); err != nil {
		validationError(c, "Request body is not valid JSON", []string{err.Error()})
		return
	}
	if errs := survey.Validate(); len(errs) > 0 {
		validationError(c, "Survey validation failed", errs)
		return
	}

	if err := h.db.SaveSurvey(&survey); err != nil {
		log.WithError(err).Error("failed to save survey")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Timestamp: time.Now(),
			Status:    http.StatusInternalServerError,
			Error:     "Internal Server Error",
			Message:   "Failed to save survey",
		})
		return
	}

	c.JSON(http.StatusCreated, survey)
}

// GetSurvey handles GET /api/v1/surveys/:id
func (h *Handlers) GetSurvey(c *gin.Context) {
	survey, err := h.db.GetSurvey(c.Param("id"))
	if err == database.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Survey not found"})
		return
	}
	if err != nil {
		log.WithError(err).Error("failed to load survey")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load survey"})
		return
	}

	c.JSON(http.StatusOK, survey)
}

// ListSurveys handles GET /api/v1/surveys with optional language and
// createdBy filters.
func (h *Handlers) ListSurveys(c *gin.Context) {
	surveys, err := h.db.ListSurveys(c.Query("language"), c.Query("createdBy"))
	if err != nil {
		log.WithError(err).Error("failed to list surveys")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list surveys"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"surveys": surveys})
}

// DeleteSurvey handles DELETE /api/v1/surveys/:id
func (h *Handlers) DeleteSurvey(c *gin.Context) {
	err := h.db.DeleteSurvey(c.Param("id"))
	if err == database.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Survey not found"})
		return
	}
	if err != nil {
		log.WithError(err).Error("failed to delete survey")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete survey"})
		return
	}

	c.Status(http.StatusNoContent)
}
