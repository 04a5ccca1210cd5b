package models

import "time"

// GroupSummary describes one performance group of a child
type GroupSummary struct {
	Group        Group      `json:"group"`
	Count        int        `json:"count"`
	Percentage   int        `json:"percentage"`
	LastActivity *time.Time `json:"lastActivity,omitempty"`
}

// SubjectBreakdown is the number of exercises of a group within one subject
type SubjectBreakdown struct {
	Subject Subject `json:"subject"`
	Count   int     `json:"count"`
}

// ExerciseStats aggregates a filtered list of exercises
type ExerciseStats struct {
	Count            int        `json:"count"`
	CorrectCount     int        `json:"correctCount"`
	OnTimeCount      int        `json:"onTimeCount"`
	Accuracy         int        `json:"accuracy"`
	AverageTimeSpent int        `json:"averageTimeSpent"`
	LastActivity     *time.Time `json:"lastActivity,omitempty"`
}

// SubjectAccuracy is the accuracy of a child within one subject
type SubjectAccuracy struct {
	Subject  Subject `json:"subject"`
	Answered int     `json:"answered"`
	Accuracy int     `json:"accuracy"`
}

// ChildReport is the overall performance report of a child
type ChildReport struct {
	TotalAnswered  int               `json:"totalAnswered"`
	CorrectCount   int               `json:"correctCount"`
	OnTimeCount    int               `json:"onTimeCount"`
	IncorrectCount int               `json:"incorrectCount"`
	Accuracy       int               `json:"accuracy"`
	Subjects       []SubjectAccuracy `json:"subjects"`
	BestSubject    Subject           `json:"bestSubject"`
	Stars          float64           `json:"stars"`
}

// JournalEntry is an exercise record as written to the answer journal
type JournalEntry struct {
	ID         int64          `json:"id"`
	ChildID    string         `json:"childId"`
	ChildName  string         `json:"childName"`
	Record     ExerciseRecord `json:"record"`
	RecordedAt time.Time      `json:"recordedAt"`
}
