// Package stats aggregates the dashboard overview numbers from the
// other domain repos, with a short lived per-user cache in front.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/azylka/pulsefit/internal/nutrition"
	"github.com/azylka/pulsefit/internal/progress"
	"github.com/azylka/pulsefit/internal/telemetry/tracing"
	"github.com/azylka/pulsefit/internal/workouts"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	// overview numbers can lag up to a minute behind
	overviewCacheExpireSeconds = 60

	// enough session history to compute a streak
	streakSessionsLimit = 365
)

//go:generate mockgen -source=$GOFILE -destination=stats_mocks_test.go -package=stats_test

type workoutsRepo interface {
	SessionsCount(ctx context.Context, userID int) (int, error)
	SessionsCountSince(ctx context.Context, userID int, since time.Time) (int, error)
	ListSessions(ctx context.Context, params workouts.ListSessionsParams) ([]workouts.Session, error)
}

type caloriesSummarizer interface {
	DailySummary(ctx context.Context, userID int, day time.Time) (*nutrition.DailySummary, error)
}

type goalsRepo interface {
	ActiveCount(ctx context.Context, userID int) (int, error)
}

type progressRepo interface {
	LatestMetric(ctx context.Context, userID int) (*progress.Metric, error)
}

type Overview struct {
	WorkoutsThisWeek  int     `json:"workoutsThisWeek"`
	TotalWorkouts     int     `json:"totalWorkouts"`
	CaloriesToday     int     `json:"caloriesToday"`
	ActiveGoals       int     `json:"activeGoals"`
	LatestWeight      float64 `json:"latestWeight"`
	CurrentStreakDays int     `json:"currentStreakDays"`
}

type Aggregator struct {
	workouts  workoutsRepo
	calories  caloriesSummarizer
	goals     goalsRepo
	progress  progressRepo
	cache     *freecache.Cache
	nowSource func() time.Time
}

func NewAggregator(
	workoutsRepo workoutsRepo,
	calories caloriesSummarizer,
	goalsRepo goalsRepo,
	progressRepo progressRepo,
) *Aggregator {
	megabyte := 1024 * 1024
	return &Aggregator{
		workouts:  workoutsRepo,
		calories:  calories,
		goals:     goalsRepo,
		progress:  progressRepo,
		cache:     freecache.NewCache(megabyte),
		nowSource: time.Now,
	}
}

func (a *Aggregator) Overview(ctx context.Context, userID int) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := fmt.Sprintf("overview::%d", userID)
	if overviewBytes, err := a.cache.Get([]byte(cacheKey)); err == nil {
		log.Tracef("found stats overview for user %d in cache", userID)
		overview := &Overview{}
		if err = json.Unmarshal(overviewBytes, overview); err == nil {
			return overview, nil
		}
		log.Errorf("failed to unmarshal stats overview from cache for user %d: %s", userID, err)
	}

	now := a.nowSource()
	weekStart := startOfDay(now).AddDate(0, 0, -int(weekdayMondayBased(now)))

	workoutsThisWeek, err := a.workouts.SessionsCountSince(ctx, userID, weekStart)
	if err != nil {
		return nil, fmt.Errorf("sessions count since week start: %w", err)
	}

	totalWorkouts, err := a.workouts.SessionsCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sessions count: %w", err)
	}

	caloriesToday := 0
	if summary, err := a.calories.DailySummary(ctx, userID, now); err != nil {
		log.Errorf("failed to get daily calories for user %d: %s", userID, err)
	} else {
		caloriesToday = summary.TotalCalories
	}

	activeGoals, err := a.goals.ActiveCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("active goals count: %w", err)
	}

	latestWeight := 0.0
	if metric, err := a.progress.LatestMetric(ctx, userID); err != nil {
		if !errors.Is(err, progress.ErrMetricNotFound) {
			return nil, fmt.Errorf("latest metric: %w", err)
		}
	} else {
		latestWeight = metric.WeightKilos
	}

	streakDays, err := a.currentStreakDays(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("current streak: %w", err)
	}

	overview := &Overview{
		WorkoutsThisWeek:  workoutsThisWeek,
		TotalWorkouts:     totalWorkouts,
		CaloriesToday:     caloriesToday,
		ActiveGoals:       activeGoals,
		LatestWeight:      latestWeight,
		CurrentStreakDays: streakDays,
	}

	if overviewBytes, err := json.Marshal(overview); err != nil {
		log.Errorf("failed to marshal stats overview for cache: %s", err)
	} else if err := a.cache.Set([]byte(cacheKey), overviewBytes, overviewCacheExpireSeconds); err != nil {
		log.Errorf("failed to write stats overview cache for user %d: %s", userID, err)
	}

	return overview, nil
}

// currentStreakDays counts the consecutive days with at least one workout
// session, ending today or yesterday.
func (a *Aggregator) currentStreakDays(ctx context.Context, userID int, now time.Time) (int, error) {
	sessions, err := a.workouts.ListSessions(ctx, workouts.ListSessionsParams{
		UserID: userID,
		Limit:  streakSessionsLimit,
	})
	if err != nil {
		return 0, fmt.Errorf("list sessions: %w", err)
	}

	sessionDays := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		sessionDays[s.Date.Format("2006-01-02")] = true
	}

	day := startOfDay(now)
	if !sessionDays[day.Format("2006-01-02")] {
		// a streak survives until the end of today
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for sessionDays[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}

	return streak, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekdayMondayBased returns 0 for Monday up to 6 for Sunday.
func weekdayMondayBased(t time.Time) time.Weekday {
	return (t.Weekday() + 6) % 7
}
