package activities

import "time"

// Activity is a single logged cardio or sport activity. Activities live
// in DynamoDB, keyed by user id and activity id.
type Activity struct {
	ID              string    `json:"id" dynamodbav:"id"`
	UserID          int       `json:"userId" dynamodbav:"userId"`
	Type            string    `json:"type" dynamodbav:"type"`
	Title           string    `json:"title" dynamodbav:"title"`
	DurationMinutes int       `json:"durationMinutes" dynamodbav:"durationMinutes"`
	CaloriesBurned  int       `json:"caloriesBurned" dynamodbav:"caloriesBurned"`
	DistanceKm      float64   `json:"distanceKm,omitempty" dynamodbav:"distanceKm"`
	OccurredAt      time.Time `json:"occurredAt" dynamodbav:"occurredAt"`
	CreatedAt       time.Time `json:"createdAt" dynamodbav:"createdAt"`
}
