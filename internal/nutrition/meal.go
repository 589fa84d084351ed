package nutrition

import "time"

type Meal struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	Name         string    `json:"name"`
	MealType     string    `json:"mealType"` // breakfast / lunch / dinner / snack
	Calories     int       `json:"calories"`
	ProteinGrams float64   `json:"proteinGrams"`
	CarbsGrams   float64   `json:"carbsGrams"`
	FatGrams     float64   `json:"fatGrams"`
	ConsumedAt   time.Time `json:"consumedAt"`
	CreatedAt    time.Time `json:"createdAt"`
}

func validMealType(mt string) bool {
	switch mt {
	case "breakfast", "lunch", "dinner", "snack":
		return true
	}
	return false
}
