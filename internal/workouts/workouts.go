package workouts

import "time"

// PlanExercise is one exercise slot inside a workout plan. The whole
// list is stored as a single JSONB column.
type PlanExercise struct {
	ExerciseName string  `json:"exerciseName"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	WeightKilos  float64 `json:"weightKilos,omitempty"`
	RestSeconds  int     `json:"restSeconds"`
}

type Plan struct {
	ID            int            `json:"id"`
	UserID        int            `json:"userId"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Difficulty    string         `json:"difficulty"` // beginner / intermediate / advanced
	DurationWeeks int            `json:"durationWeeks"`
	Exercises     []PlanExercise `json:"exercises"`
	IsActive      bool           `json:"isActive"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type Session struct {
	ID              int       `json:"id"`
	UserID          int       `json:"userId"`
	PlanID          int       `json:"planId"`
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"durationMinutes"`
	Notes           string    `json:"notes,omitempty"`
	Rating          int       `json:"rating,omitempty"` // 1-5
	CreatedAt       time.Time `json:"createdAt"`
}

func validDifficulty(d string) bool {
	switch d {
	case "beginner", "intermediate", "advanced":
		return true
	}
	return false
}
