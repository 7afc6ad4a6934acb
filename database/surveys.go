package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"survey-translation-service/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a survey id has no stored document.
var ErrNotFound = sql.ErrNoRows

// SaveSurvey stores a survey document keyed by id, assigning a fresh id
// when none is set. Timestamps are stamped server-side.
func (d *Database) SaveSurvey(survey *models.Survey) error {
	if survey.ID == "" {
		survey.ID = uuid.NewString()
	}

	now := time.Now().UTC()
	if survey.CreatedAt == nil {
		survey.CreatedAt = &now
	}
	survey.UpdatedAt = &now

	document, err := json.Marshal(survey)
	if err != nil {
		return fmt.Errorf("failed to serialize survey: %w", err)
	}

	query := `
	INSERT INTO surveys (id, language, created_by, document)
	VALUES (?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE language = VALUES(language), created_by = VALUES(created_by), document = VALUES(document)`

	if _, err := d.db.Exec(query, survey.ID, survey.Language, survey.CreatedBy, document); err != nil {
		return fmt.Errorf("failed to save survey: %w", err)
	}
	return nil
}

// GetSurvey loads a survey document by id. Returns ErrNotFound when the id
// is unknown.
func (d *Database) GetSurvey(id string) (*models.Survey, error) {
	var document []byte
	err := d.db.QueryRow("SELECT document FROM surveys WHERE id = ?", id).Scan(&document)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load survey: %w", err)
	}

	var survey models.Survey
	if err := json.Unmarshal(document, &survey); err != nil {
		return nil, fmt.Errorf("failed to deserialize survey %s: %w", id, err)
	}
	return &survey, nil
}

// ListSurveys returns stored surveys, optionally filtered by language
// and/or creator.
func (d *Database) ListSurveys(language, createdBy string) ([]*models.Survey, error) {
	query := "SELECT document FROM surveys WHERE 1=1"
	var args []any
	if language != "" {
		query += " AND language = ?"
		args = append(args, language)
	}
	if createdBy != "" {
		query += " AND created_by = ?"
		args = append(args, createdBy)
	}
	query += " ORDER BY created_at DESC"

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list surveys: %w", err)
	}
	defer rows.Close()

	surveys := []*models.Survey{}
	for rows.Next() {
		var document []byte
		if err := rows.Scan(&document); err != nil {
			return nil, fmt.Errorf("failed to scan survey row: %w", err)
		}
		var survey models.Survey
		if err := json.Unmarshal(document, &survey); err != nil {
			return nil, fmt.Errorf("failed to deserialize survey: %w", err)
		}
		surveys = append(surveys, &survey)
	}
	return surveys, rows.Err()
}

// DeleteSurvey removes a survey by id. Returns ErrNotFound when nothing
// was deleted.
func (d *Database) DeleteSurvey(id string) error {
	result, err := d.db.Exec("DELETE FROM surveys WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete survey: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
