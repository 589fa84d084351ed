package nutrition

import (
	"context"
	"time"

	"github.com/azylka/pulsefit/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

type mealsLister interface {
	List(ctx context.Context, params ListParams) ([]Meal, error)
}

type DailySummary struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	TotalCalories int     `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFat      float64 `json:"totalFat"`
	MealCount     int     `json:"mealCount"`
}

// Analyzer computes nutrition aggregates over the meals of a user.
type Analyzer struct {
	repo mealsLister
}

func NewAnalyzer(repo mealsLister) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

func (a *Analyzer) DailySummary(ctx context.Context, userID int, day time.Time) (_ *DailySummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutrition.analyzer.dailysummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	meals, err := a.repo.List(ctx, ListParams{
		UserID: userID,
		From:   &dayStart,
		To:     &dayEnd,
	})
	if err != nil {
		return nil, err
	}

	summary := &DailySummary{
		Date:      dayStart.Format("2006-01-02"),
		MealCount: len(meals),
	}
	for _, m := range meals {
		summary.TotalCalories += m.Calories
		summary.TotalProtein += m.ProteinGrams
		summary.TotalCarbs += m.CarbsGrams
		summary.TotalFat += m.FatGrams
	}

	return summary, nil
}
