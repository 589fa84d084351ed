package progress

import "time"

// Metric is one body measurement snapshot.
type Metric struct {
	ID             int                `json:"id"`
	UserID         int                `json:"userId"`
	WeightKilos    float64            `json:"weightKilos"`
	BodyFatPercent float64            `json:"bodyFatPercent"`
	MusclePercent  float64            `json:"musclePercent"`
	Measurements   map[string]float64 `json:"measurements"`
	RecordedAt     time.Time          `json:"recordedAt"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// Photo is the metadata row of a progress photo, the binary
// content lives in the disk store under FileID.
type Photo struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Caption   string    `json:"caption"`
	TakenAt   time.Time `json:"takenAt"`
	FileID    int64     `json:"fileId"`
	CreatedAt time.Time `json:"createdAt"`
}
