package users

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"displayName"`
	AvatarURL    string    `json:"avatarUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Preferences are per-user display and measurement settings.
type Preferences struct {
	UserID        int    `json:"userId"`
	Units         string `json:"units"` // metric / imperial
	Notifications bool   `json:"notifications"`
	Theme         string `json:"theme"`
}
