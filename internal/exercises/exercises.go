package exercises

// Exercise is one entry of the shared exercise library. The library is
// read-only for the backend, items live in DynamoDB and get seeded by
// ops tooling.
type Exercise struct {
	ID           string   `json:"id" dynamodbav:"id"`
	Name         string   `json:"name" dynamodbav:"name"`
	Description  string   `json:"description" dynamodbav:"description"`
	MuscleGroups []string `json:"muscleGroups" dynamodbav:"muscleGroups"`
	Equipment    []string `json:"equipment" dynamodbav:"equipment"`
	Difficulty   string   `json:"difficulty" dynamodbav:"difficulty"`
	Instructions []string `json:"instructions" dynamodbav:"instructions"`
	VideoURL     string   `json:"videoUrl,omitempty" dynamodbav:"videoUrl"`
	ImageURL     string   `json:"imageUrl,omitempty" dynamodbav:"imageUrl"`
}
