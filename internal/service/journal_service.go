package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"quizowl/internal/models"
	"quizowl/internal/repository"
)

// JournalExport is the file format written by the journal export command
type JournalExport struct {
	Version      string                `json:"version"`
	ExportedAt   time.Time             `json:"exportedAt"`
	DatabaseType string                `json:"databaseType"`
	Entries      []models.JournalEntry `json:"entries"`
}

// JournalChildStats summarises one child's journaled answers
type JournalChildStats struct {
	ChildID   string               `json:"childId"`
	ChildName string               `json:"childName"`
	Stats     models.ExerciseStats `json:"stats"`
	Stars     float64              `json:"stars"`
}

// journalReader is the read side of the journal repository
type journalReader interface {
	List(ctx context.Context, filter repository.JournalFilter) ([]models.JournalEntry, error)
}

// JournalService exports and summarises the answer journal
type JournalService struct {
	repo         journalReader
	databaseType string
	now          func() time.Time
}

// NewJournalService creates a new journal service
func NewJournalService(repo *repository.JournalRepository, databaseType string) *JournalService {
	return &JournalService{repo: repo, databaseType: databaseType, now: time.Now}
}

// Export writes the matching journal entries to w as indented JSON and
// returns how many were written
func (s *JournalService) Export(ctx context.Context, w io.Writer, filter repository.JournalFilter) (int, error) {
	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to read journal: %w", err)
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}

	export := JournalExport{
		Version:      "1.0",
		ExportedAt:   s.now().UTC(),
		DatabaseType: s.databaseType,
		Entries:      entries,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return 0, fmt.Errorf("failed to write export: %w", err)
	}
	return len(entries), nil
}

// Stats aggregates the matching journal entries per child, ordered by name
func (s *JournalService) Stats(ctx context.Context, filter repository.JournalFilter) ([]JournalChildStats, error) {
	entries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	records := make(map[string][]models.ExerciseRecord)
	names := make(map[string]string)
	for _, e := range entries {
		records[e.ChildID] = append(records[e.ChildID], e.Record)
		names[e.ChildID] = e.ChildName
	}

	out := make([]JournalChildStats, 0, len(records))
	for childID, recs := range records {
		stats := ComputeExerciseStats(recs)
		out = append(out, JournalChildStats{
			ChildID:   childID,
			ChildName: names[childID],
			Stats:     stats,
			Stars:     StarRating(stats.Accuracy),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ChildName != out[j].ChildName {
			return out[i].ChildName < out[j].ChildName
		}
		return out[i].ChildID < out[j].ChildID
	})
	return out, nil
}
