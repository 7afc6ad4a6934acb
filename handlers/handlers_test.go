package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"survey-translation-service/llm"
	"survey-translation-service/models"
	"survey-translation-service/schema"
	"survey-translation-service/service"
	"survey-translation-service/stubllm"

	"github.com/gin-gonic/gin"
)

type failingClient struct{}

func (f *failingClient) Chat(prompt string, format *schema.ResponseFormat) (*llm.ChatResult, error) {
	return nil, errors.New("provider unavailable")
}

func (f *failingClient) ModelName() string { return "failing" }

func newRouter(client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandlers(service.NewService(client), nil)

	router := gin.New()
	api := router.Group("/api/v1/surveys")
	api.POST("/translate", h.TranslateSurvey)
	api.POST("/translate/async", h.TranslateSurveyAsync)
	api.GET("/translate/languages", h.GetSupportedLanguages)
	return router
}

const validRequestJSON = `{
	"survey": {
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
	},
	"sourceLanguage": "en",
	"targetLanguage": "fr"
}`

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestTranslateSurveySuccess(t *testing.T) {
	router := newRouter(stubllm.NewClient())

	w := postJSON(router, "/api/v1/surveys/translate", validRequestJSON)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var response models.TranslationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if response.TranslatedSurvey == nil {
		t.Fatal("response has no translated survey")
	}
	if response.TranslatedSurvey.Language != "fr" {
		t.Errorf("translated language = %q, want fr", response.TranslatedSurvey.Language)
	}
	if response.SourceLanguage != "en" || response.TargetLanguage != "fr" {
		t.Errorf("languages = %q/%q", response.SourceLanguage, response.TargetLanguage)
	}
	if !response.Metadata.IsComplete {
		t.Error("metadata should be complete")
	}
}

func TestTranslateSurveyFailureReturnsEmpty500(t *testing.T) {
	router := newRouter(&failingClient{})

	w := postJSON(router, "/api/v1/surveys/translate", validRequestJSON)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", w.Body.String())
	}
}

func TestTranslateSurveyValidation(t *testing.T) {
	router := newRouter(stubllm.NewClient())

	tests := []struct {
		name       string
		body       string
		wantDetail string
	}{
		{
			name:       "not JSON",
			body:       "{not json",
			wantDetail: "",
		},
		{
			name:       "missing source language",
			body:       strings.Replace(validRequestJSON, `"sourceLanguage": "en",`, "", 1),
			wantDetail: "Source language is required",
		},
		{
			name:       "missing survey",
			body:       `{"sourceLanguage": "en", "targetLanguage": "fr"}`,
			wantDetail: "Survey data is required",
		},
		{
			name:       "survey missing title",
			body:       strings.Replace(validRequestJSON, `"title": "Customer Satisfaction",`, "", 1),
			wantDetail: "Survey title is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/v1/surveys/translate", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}

			var errResp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
				t.Fatalf("error body is not valid JSON: %v", err)
			}
			if errResp.Status != http.StatusBadRequest {
				t.Errorf("error status = %d", errResp.Status)
			}
			if tt.wantDetail == "" {
				return
			}
			found := false
			for _, d := range errResp.Details {
				if d == tt.wantDetail {
					found = true
				}
			}
			if !found {
				t.Errorf("details = %v, missing %q", errResp.Details, tt.wantDetail)
			}
		})
	}
}

func TestTranslateSurveyAsync(t *testing.T) {
	// Outcome-independent: even with a failing provider the endpoint
	// accepts the job.
	router := newRouter(&failingClient{})

	jobIDPattern := regexp.MustCompile(`^job_\d+_\d{1,3}$`)
	for i := 0; i < 3; i++ {
		w := postJSON(router, "/api/v1/surveys/translate/async", validRequestJSON)

		if w.Code != http.StatusAccepted {
			t.Fatalf("status = %d, want 202", w.Code)
		}

		var job models.TranslationJobResponse
		if err := json.Unmarshal(w.Body.Bytes(), &job); err != nil {
			t.Fatalf("job body is not valid JSON: %v", err)
		}
		if !jobIDPattern.MatchString(job.JobID) {
			t.Errorf("jobId = %q", job.JobID)
		}
		if job.Status != "PROCESSING" {
			t.Errorf("status = %q, want PROCESSING", job.Status)
		}
		if job.EstimatedCompletionTimeMs != 30000 {
			t.Errorf("estimate = %d, want 30000", job.EstimatedCompletionTimeMs)
		}
	}
}

func TestGetSupportedLanguages(t *testing.T) {
	router := newRouter(stubllm.NewClient())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/surveys/translate/languages", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var response models.SupportedLanguagesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if len(response.SupportedLanguages) != 17 {
		t.Fatalf("got %d languages, want 17", len(response.SupportedLanguages))
	}
	if response.SupportedLanguages[0].Code != "en" || response.SupportedLanguages[0].Name != "English" {
		t.Errorf("first language = %+v, want en/English", response.SupportedLanguages[0])
	}
}
