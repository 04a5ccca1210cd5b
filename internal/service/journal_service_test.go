package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"quizowl/internal/models"
	"quizowl/internal/repository"
)

type fakeJournalReader struct {
	entries []models.JournalEntry
	filter  repository.JournalFilter
	err     error
}

func (f *fakeJournalReader) List(ctx context.Context, filter repository.JournalFilter) ([]models.JournalEntry, error) {
	f.filter = filter
	return f.entries, f.err
}

func journalEntries(t *testing.T) []models.JournalEntry {
	t.Helper()
	var entries []models.JournalEntry
	for _, id := range []string{"child2", "child1"} {
		child := seededChild(t, id)
		for _, r := range child.ExerciseHistory {
			entries = append(entries, models.JournalEntry{
				ID:         int64(len(entries) + 1),
				ChildID:    child.ID,
				ChildName:  child.Name,
				Record:     r,
				RecordedAt: r.Timestamp,
			})
		}
	}
	return entries
}

func TestJournalService_Export(t *testing.T) {
	reader := &fakeJournalReader{entries: journalEntries(t)}
	svc := &JournalService{repo: reader, databaseType: "sqlite", now: func() time.Time { return testNow }}

	var buf bytes.Buffer
	filter := repository.JournalFilter{ChildID: "child1", IncorrectOnly: true}
	n, err := svc.Export(context.Background(), &buf, filter)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if n != 15 {
		t.Errorf("Export() = %d, want 15", n)
	}
	if reader.filter != filter {
		t.Errorf("filter passed = %+v, want %+v", reader.filter, filter)
	}

	var export JournalExport
	if err := json.Unmarshal(buf.Bytes(), &export); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if export.Version != "1.0" || export.DatabaseType != "sqlite" || !export.ExportedAt.Equal(testNow) {
		t.Errorf("export metadata = %+v", export)
	}
	if len(export.Entries) != 15 || export.Entries[0].Record.ID != "ex11" {
		t.Errorf("export entries = %d, first %s", len(export.Entries), export.Entries[0].Record.ID)
	}
}

func TestJournalService_ExportEmpty(t *testing.T) {
	svc := &JournalService{repo: &fakeJournalReader{}, now: time.Now}

	var buf bytes.Buffer
	if _, err := svc.Export(context.Background(), &buf, repository.JournalFilter{}); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"entries": []`)) {
		t.Errorf("empty export = %s, want an empty entries array", buf.String())
	}
}

func TestJournalService_Stats(t *testing.T) {
	svc := &JournalService{repo: &fakeJournalReader{entries: journalEntries(t)}, now: time.Now}

	stats, err := svc.Stats(context.Background(), repository.JournalFilter{})
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Stats() returned %d children, want 2", len(stats))
	}
	if stats[0].ChildName != "Ahmed" || stats[0].Stats.Count != 10 || stats[0].Stats.Accuracy != 70 || stats[0].Stars != 3.5 {
		t.Errorf("Ahmed stats = %+v", stats[0])
	}
	if stats[1].ChildName != "Omar" || stats[1].Stats.Count != 5 || stats[1].Stars != 4 {
		t.Errorf("Omar stats = %+v", stats[1])
	}
}

func TestJournalService_ReadError(t *testing.T) {
	svc := &JournalService{repo: &fakeJournalReader{err: errors.New("locked")}, now: time.Now}

	if _, err := svc.Export(context.Background(), &bytes.Buffer{}, repository.JournalFilter{}); err == nil {
		t.Error("Export() error = nil, want read error")
	}
	if _, err := svc.Stats(context.Background(), repository.JournalFilter{}); err == nil {
		t.Error("Stats() error = nil, want read error")
	}
}
