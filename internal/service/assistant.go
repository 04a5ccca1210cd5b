package service

import (
	"fmt"
	"strings"

	"quizowl/internal/models"
)

// AssistantContext is what the parent is looking at when asking the assistant
type AssistantContext struct {
	ParentName string
	Child      *models.Child
	Group      models.Group
	Exercise   *models.ExerciseRecord
}

// Assistant answers a parent's questions about a child's performance with
// canned, keyword-matched replies
type Assistant struct{}

// NewAssistant creates a new assistant
func NewAssistant() *Assistant {
	return &Assistant{}
}

// Greeting returns the opening message for a context
func (a *Assistant) Greeting(c AssistantContext) string {
	switch {
	case c.Exercise != nil:
		return fmt.Sprintf("I can help you understand this specific question and provide suggestions for improvement. "+
			"The student %s answered this %s question in %d seconds. What would you like to know?",
			correctness(c.Exercise.IsCorrect), c.Exercise.Subject, c.Exercise.TimeSpent)
	case c.Child != nil && c.Group.Valid():
		return fmt.Sprintf("I'm here to provide insights about %s's %s. They have %d exercises in this category. How can I help you?",
			c.Child.Name, groupLabel(c.Group), GroupCount(c.Child, c.Group))
	}

	subject := "your children"
	if c.Child != nil {
		subject = c.Child.Name
	}
	return fmt.Sprintf("Hello %s! I'm here to help you understand %s's performance. How can I assist you today?", c.ParentName, subject)
}

// Reply answers a question in a context
func (a *Assistant) Reply(c AssistantContext, question string) string {
	q := strings.ToLower(question)

	switch {
	case c.Exercise != nil:
		return exerciseReply(c.Exercise, q)
	case c.Child != nil && c.Group.Valid():
		return groupReply(c.Child, c.Group, q)
	}
	return generalReply(c.Child, q)
}

func exerciseReply(ex *models.ExerciseRecord, q string) string {
	if containsAny(q, "improve", "better") {
		advice := "Great job completing it on time!"
		if ex.TimeSpent > models.WithinTimeLimit {
			advice = "Also, work on time management by setting a timer during practice."
		}
		return fmt.Sprintf("To improve on this type of question, I recommend: 1) Practice similar %s problems daily, "+
			"2) Take time to read questions carefully, 3) Review the explanation provided. %s", ex.Subject, advice)
	}
	if containsAny(q, "why", "wrong", "mistake") {
		return fmt.Sprintf("The student chose %q but the correct answer was %q. This might be due to misreading the question "+
			"or needing more practice with this concept. Focus on reinforcing the fundamentals in %s.",
			optionText(ex, ex.UserAnswer), optionText(ex, ex.CorrectAnswer), ex.Subject)
	}

	timing := "Consider practicing with a timer to improve speed."
	if ex.WithinTime {
		timing = "Great time management!"
	}
	return fmt.Sprintf("This %s question was answered %s in %d seconds. %s What specific aspect would you like to discuss?",
		ex.Subject, correctness(ex.IsCorrect), ex.TimeSpent, timing)
}

func groupReply(child *models.Child, group models.Group, q string) string {
	if containsAny(q, "pattern", "trend") {
		var shows string
		switch group {
		case models.GroupCorrect:
			shows = "strong performance and good understanding"
		case models.GroupTimer:
			shows = "excellent time management skills"
		default:
			shows = "areas that need more practice and attention"
		}
		return fmt.Sprintf("Looking at the %s exercises, %s shows %s. I recommend focusing on consistent practice "+
			"and reviewing concepts where mistakes occur.", group, child.Name, shows)
	}
	if containsAny(q, "subject", "topic") {
		return "The exercises are distributed across Maths, English, and Science. To see a breakdown by subject, " +
			"you can review the exercise list where each question is tagged with its subject area."
	}
	return fmt.Sprintf("%s has %d exercises in this category. What specific information would you like to know?",
		child.Name, GroupCount(child, group))
}

func generalReply(child *models.Child, q string) string {
	switch {
	case containsAny(q, "improvement", "progress", "better"):
		if child == nil {
			return "Yes, there's noticeable improvement in both consistency and accuracy. Their average score increased, " +
				"and they're completing assignments faster with fewer mistakes."
		}
		pace := "and could improve time management"
		if child.CorrectWithinTimerCount*2 > child.CorrectCount {
			pace = "efficiently"
		}
		return fmt.Sprintf("%s shows noticeable improvement! Their accuracy is at %d%%, with %d correct answers. "+
			"They're completing exercises %s.", child.Name, child.Accuracy, child.CorrectCount, pace)

	case containsAny(q, "weakness", "weak", "struggle"):
		if child == nil {
			return "Review the incorrect exercises section to identify weak areas. Focus on subjects where mistakes " +
				"are most common and provide additional practice in those topics."
		}
		return fmt.Sprintf("%s has %d incorrect exercises. Focus on these areas for improvement. Review the incorrect "+
			"exercises list to identify patterns and subjects that need more attention.", child.Name, child.IncorrectCount)

	case containsAny(q, "strength", "good", "best"):
		if child == nil {
			return "Their strongest area is solving problems within the time limit, showing good time management " +
				"skills and quick recall."
		}
		area := "ability to solve problems correctly"
		if float64(child.CorrectWithinTimerCount) > float64(child.CorrectCount)*0.7 {
			area = "excellent time management and accuracy"
		}
		return fmt.Sprintf("%s's strongest area is their %s. They have %d correct answers out of %d total exercises.",
			child.Name, area, child.CorrectCount, child.TotalAnswered())

	case containsAny(q, "recommend", "suggest", "help"):
		return "I recommend: 1) Review incorrect exercises together, 2) Practice weak subjects daily for 15-20 minutes, " +
			"3) Encourage careful reading of questions, 4) Use the timer feature to build time management skills, " +
			"5) Celebrate correct answers to build confidence."
	}

	if child != nil {
		return fmt.Sprintf("%s is currently at %d%% accuracy with %d correct answers and %d incorrect ones. "+
			"They're making good progress! How else can I help you?",
			child.Name, child.Accuracy, child.CorrectCount, child.IncorrectCount)
	}
	return "I can help you understand your children's performance, identify their strengths and weaknesses, " +
		"and provide recommendations for improvement. What specific information would you like to know?"
}

func groupLabel(group models.Group) string {
	switch group {
	case models.GroupCorrect:
		return "correct exercises"
	case models.GroupTimer:
		return "exercises completed within time"
	}
	return "incorrect exercises"
}

func correctness(correct bool) string {
	if correct {
		return "correctly"
	}
	return "incorrectly"
}

func optionText(ex *models.ExerciseRecord, i int) string {
	if i < 0 || i >= len(ex.Options) {
		return ""
	}
	return ex.Options[i]
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
