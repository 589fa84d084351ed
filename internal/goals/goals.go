package goals

import "time"

type Goal struct {
	ID           int        `json:"id"`
	UserID       int        `json:"userId"`
	Title        string     `json:"title"`
	Category     string     `json:"category"`
	TargetValue  float64    `json:"targetValue"`
	CurrentValue float64    `json:"currentValue"`
	Unit         string     `json:"unit"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	Achieved     bool       `json:"achieved"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
