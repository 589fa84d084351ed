package trainers

import "time"

type Trainer struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	Bio         string    `json:"bio"`
	Specialties []string  `json:"specialties"`
	HourlyRate  float64   `json:"hourlyRate"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ClientLink connects a trainer profile to one of their client users.
type ClientLink struct {
	TrainerID    int       `json:"trainerId"`
	ClientUserID int       `json:"clientUserId"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

var validLinkStatus = map[string]bool{
	"active":   true,
	"inactive": true,
	"pending":  true,
}
