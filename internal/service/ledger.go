package service

import (
	"strings"
	"time"

	"quizowl/internal/models"
)

// NewExerciseRecord turns an answer submission into a history record.
// Correctness and the on-time flag are derived here, never taken from the caller.
func NewExerciseRecord(id string, at time.Time, in models.ExerciseInput) models.ExerciseRecord {
	return models.ExerciseRecord{
		ID:            id,
		QuestionID:    in.QuestionID,
		Subject:       in.Subject,
		Question:      in.Question,
		Options:       in.Options,
		UserAnswer:    in.UserAnswer,
		CorrectAnswer: in.CorrectAnswer,
		IsCorrect:     in.UserAnswer == in.CorrectAnswer,
		WithinTime:    in.TimeSpent <= models.WithinTimeLimit,
		TimeSpent:     in.TimeSpent,
		Timestamp:     at,
	}
}

// ApplyAnswer appends the record to the child's history and updates the
// running counters and accuracy. Callers pass a private copy of the child.
func ApplyAnswer(child *models.Child, record models.ExerciseRecord) {
	child.ExerciseHistory = append(child.ExerciseHistory, record)
	if record.IsCorrect {
		child.CorrectCount++
		if record.WithinTime {
			child.CorrectWithinTimerCount++
		}
	} else {
		child.IncorrectCount++
	}
	child.Accuracy = Percentage(child.CorrectCount, child.TotalAnswered())
}

// Percentage returns part/total as a whole percentage, rounding halves up.
// It is 0 when total is 0.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (part*200 + total) / (2 * total)
}

// FilterHistory returns the records matching a subject (case-insensitive) and
// a group, in history order. An empty subject or group matches everything.
func FilterHistory(history []models.ExerciseRecord, subject string, group models.Group) []models.ExerciseRecord {
	out := []models.ExerciseRecord{}
	for _, r := range history {
		if subject != "" && !strings.EqualFold(string(r.Subject), subject) {
			continue
		}
		if group != "" && !group.Contains(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// GroupCount is the running counter the child keeps for a group
func GroupCount(child *models.Child, group models.Group) int {
	switch group {
	case models.GroupCorrect:
		return child.CorrectCount
	case models.GroupTimer:
		return child.CorrectWithinTimerCount
	case models.GroupIncorrect:
		return child.IncorrectCount
	}
	return 0
}

// GroupSummaries describes every performance group of a child
func GroupSummaries(child *models.Child) []models.GroupSummary {
	total := child.TotalAnswered()
	summaries := make([]models.GroupSummary, 0, len(models.Groups))
	for _, group := range models.Groups {
		count := GroupCount(child, group)
		summaries = append(summaries, models.GroupSummary{
			Group:        group,
			Count:        count,
			Percentage:   Percentage(count, total),
			LastActivity: lastActivity(FilterHistory(child.ExerciseHistory, "", group)),
		})
	}
	return summaries
}

// SubjectBreakdowns counts a group's exercises per subject
func SubjectBreakdowns(child *models.Child, group models.Group) []models.SubjectBreakdown {
	breakdowns := make([]models.SubjectBreakdown, 0, len(models.Subjects))
	for _, subject := range models.Subjects {
		breakdowns = append(breakdowns, models.SubjectBreakdown{
			Subject: subject,
			Count:   len(FilterHistory(child.ExerciseHistory, string(subject), group)),
		})
	}
	return breakdowns
}

// ComputeExerciseStats aggregates a list of exercises
func ComputeExerciseStats(records []models.ExerciseRecord) models.ExerciseStats {
	stats := models.ExerciseStats{Count: len(records)}
	if len(records) == 0 {
		return stats
	}

	timeSpent := 0
	for _, r := range records {
		if r.IsCorrect {
			stats.CorrectCount++
		}
		if r.WithinTime {
			stats.OnTimeCount++
		}
		timeSpent += r.TimeSpent
	}
	stats.Accuracy = Percentage(stats.CorrectCount, len(records))
	stats.AverageTimeSpent = (timeSpent*2 + len(records)) / (2 * len(records))
	stats.LastActivity = lastActivity(records)
	return stats
}

// BuildChildReport summarises a child's overall performance
func BuildChildReport(child *models.Child) models.ChildReport {
	report := models.ChildReport{
		TotalAnswered:  child.TotalAnswered(),
		CorrectCount:   child.CorrectCount,
		OnTimeCount:    child.CorrectWithinTimerCount,
		IncorrectCount: child.IncorrectCount,
		Accuracy:       Percentage(child.CorrectCount, child.TotalAnswered()),
		Subjects:       make([]models.SubjectAccuracy, 0, len(models.Subjects)),
	}

	best := -1
	for _, subject := range models.Subjects {
		stats := ComputeExerciseStats(FilterHistory(child.ExerciseHistory, string(subject), ""))
		report.Subjects = append(report.Subjects, models.SubjectAccuracy{
			Subject:  subject,
			Answered: stats.Count,
			Accuracy: stats.Accuracy,
		})
		// Ties go to the subject listed first
		if stats.Accuracy > best {
			best = stats.Accuracy
			report.BestSubject = subject
		}
	}

	report.Stars = StarRating(report.Accuracy)
	return report
}

// StarRating maps an accuracy percentage to a 2 to 5 star rating in half steps
func StarRating(accuracy int) float64 {
	switch {
	case accuracy >= 90:
		return 5
	case accuracy >= 80:
		return 4
	case accuracy >= 70:
		return 3.5
	case accuracy >= 60:
		return 3
	case accuracy >= 50:
		return 2.5
	}
	return 2
}

func lastActivity(records []models.ExerciseRecord) *time.Time {
	var latest *time.Time
	for i := range records {
		if latest == nil || records[i].Timestamp.After(*latest) {
			t := records[i].Timestamp
			latest = &t
		}
	}
	return latest
}
