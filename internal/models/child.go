package models

// DefaultAvatar is given to every new child profile
const DefaultAvatar = "👨‍🎓"

// Child represents a learner profile owned by a parent
type Child struct {
	ID                      string           `json:"id"`
	Name                    string           `json:"name"`
	Username                string           `json:"username"`
	Password                string           `json:"-"`
	Avatar                  string           `json:"avatar,omitempty"`
	Accuracy                int              `json:"accuracy"`
	CorrectCount            int              `json:"correctCount"`
	CorrectWithinTimerCount int              `json:"correctWithinTimerCount"`
	IncorrectCount          int              `json:"incorrectCount"`
	ExerciseHistory         []ExerciseRecord `json:"exerciseHistory"`
}

// TotalAnswered returns how many exercises the child has answered
func (c *Child) TotalAnswered() int {
	return c.CorrectCount + c.IncorrectCount
}

// Clone returns a copy that shares no mutable state with c
func (c *Child) Clone() *Child {
	if c == nil {
		return nil
	}
	clone := *c
	clone.ExerciseHistory = make([]ExerciseRecord, len(c.ExerciseHistory))
	copy(clone.ExerciseHistory, c.ExerciseHistory)
	return &clone
}

// ChildSummary is a child without its exercise history, used for roster listings
type ChildSummary struct {
	ID                      string `json:"id"`
	Name                    string `json:"name"`
	Username                string `json:"username"`
	Avatar                  string `json:"avatar,omitempty"`
	Accuracy                int    `json:"accuracy"`
	CorrectCount            int    `json:"correctCount"`
	CorrectWithinTimerCount int    `json:"correctWithinTimerCount"`
	IncorrectCount          int    `json:"incorrectCount"`
	TotalAnswered           int    `json:"totalAnswered"`
}

// Summary strips the history from a child
func (c *Child) Summary() ChildSummary {
	return ChildSummary{
		ID:                      c.ID,
		Name:                    c.Name,
		Username:                c.Username,
		Avatar:                  c.Avatar,
		Accuracy:                c.Accuracy,
		CorrectCount:            c.CorrectCount,
		CorrectWithinTimerCount: c.CorrectWithinTimerCount,
		IncorrectCount:          c.IncorrectCount,
		TotalAnswered:           c.TotalAnswered(),
	}
}
