package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"quizowl/internal/database"
	"quizowl/internal/models"
)

// JournalFilter narrows a journal listing. Zero values mean no restriction.
type JournalFilter struct {
	ChildID       string
	IncorrectOnly bool
	Since         time.Time
	Limit         int
}

// JournalRepository appends answered exercises to the answer_journal table
type JournalRepository struct {
	db *database.DB
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *database.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Append writes one exercise record for a child and returns the journal row ID
func (r *JournalRepository) Append(ctx context.Context, childID, childName string, record models.ExerciseRecord) (int64, error) {
	options, err := json.Marshal(record.Options)
	if err != nil {
		return 0, fmt.Errorf("failed to encode options: %w", err)
	}

	query := `
		INSERT INTO answer_journal
			(child_id, child_name, record_id, question_id, subject, question, options,
			 user_answer, correct_answer, is_correct, within_time, time_spent, answered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(ctx, query,
		childID, childName, record.ID, record.QuestionID, string(record.Subject), record.Question, string(options),
		record.UserAnswer, record.CorrectAnswer, record.IsCorrect, record.WithinTime, record.TimeSpent, record.Timestamp.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to append journal entry: %w", err)
	}
	return id, nil
}

// List returns journal entries matching the filter, oldest first
func (r *JournalRepository) List(ctx context.Context, filter JournalFilter) ([]models.JournalEntry, error) {
	var (
		where []string
		args  []any
	)
	if filter.ChildID != "" {
		where = append(where, "child_id = ?")
		args = append(args, filter.ChildID)
	}
	if filter.IncorrectOnly {
		where = append(where, "is_correct = ?")
		args = append(args, false)
	}
	if !filter.Since.IsZero() {
		where = append(where, "answered_at >= ?")
		args = append(args, filter.Since.UTC())
	}

	query := `
		SELECT id, child_id, child_name, record_id, question_id, subject, question, options,
		       user_answer, correct_answer, is_correct, within_time, time_spent, answered_at, recorded_at
		FROM answer_journal`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY answered_at ASC, id ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var (
			entry   models.JournalEntry
			subject string
			options string
		)
		err := rows.Scan(
			&entry.ID,
			&entry.ChildID,
			&entry.ChildName,
			&entry.Record.ID,
			&entry.Record.QuestionID,
			&subject,
			&entry.Record.Question,
			&options,
			&entry.Record.UserAnswer,
			&entry.Record.CorrectAnswer,
			&entry.Record.IsCorrect,
			&entry.Record.WithinTime,
			&entry.Record.TimeSpent,
			&entry.Record.Timestamp,
			&entry.RecordedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entry.Record.Subject = models.Subject(subject)
		if err := json.Unmarshal([]byte(options), &entry.Record.Options); err != nil {
			return nil, fmt.Errorf("failed to decode options of entry %d: %w", entry.ID, err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Count returns the number of journal entries
func (r *JournalRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM answer_journal").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return count, nil
}
