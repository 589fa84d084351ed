package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/azylka/pulsefit/internal/config"
	"github.com/azylka/pulsefit/internal/db"
	"github.com/azylka/pulsefit/internal/goals"
	"github.com/azylka/pulsefit/internal/nutrition"
	"github.com/azylka/pulsefit/internal/progress"
	"github.com/azylka/pulsefit/internal/users"
	"github.com/azylka/pulsefit/internal/workouts"
	"github.com/azylka/pulsefit/pkg"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"
)

// seeds the database with a demo user and a few weeks of fake
// fitness data, handy for local development and demos
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	username := flag.String("username", "demo", "username for the demo user")
	password := flag.String("password", "demopass", "password for the demo user")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	passwordHash, err := pkg.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password: %s", err)
	}

	usersRepo := users.NewRepo(dbPool)
	user, err := usersRepo.Add(ctx, users.User{
		Username:     *username,
		Email:        gofakeit.Email(),
		PasswordHash: passwordHash,
		DisplayName:  gofakeit.Name(),
		CreatedAt:    time.Now(),
	})
	if err != nil {
		log.Fatalf("add demo user: %s", err)
	}
	log.Infof("demo user [%s] created, id: %d", user.Username, user.ID)

	if err := seedWorkouts(ctx, workouts.NewRepo(dbPool), user.ID); err != nil {
		log.Fatalf("seed workouts: %s", err)
	}
	if err := seedMeals(ctx, nutrition.NewRepo(dbPool), user.ID); err != nil {
		log.Fatalf("seed meals: %s", err)
	}
	if err := seedMetrics(ctx, progress.NewRepo(dbPool), user.ID); err != nil {
		log.Fatalf("seed metrics: %s", err)
	}
	if err := seedGoals(ctx, goals.NewRepo(dbPool), user.ID); err != nil {
		log.Fatalf("seed goals: %s", err)
	}

	log.Infof("all done, log in with [%s] and the chosen password", *username)
}

func seedWorkouts(ctx context.Context, repo *workouts.Repo, userID int) error {
	difficulties := []string{"beginner", "intermediate", "advanced"}
	for i := 0; i < 3; i++ {
		var exercises []workouts.PlanExercise
		for e := 0; e < gofakeit.Number(3, 6); e++ {
			exercises = append(exercises, workouts.PlanExercise{
				ExerciseName: gofakeit.RandomString([]string{
					"Squat", "Bench Press", "Deadlift", "Overhead Press",
					"Barbell Row", "Pull Up", "Lunge", "Plank",
				}),
				Sets:        gofakeit.Number(3, 5),
				Reps:        gofakeit.Number(5, 12),
				WeightKilos: float64(gofakeit.Number(20, 120)),
				RestSeconds: gofakeit.Number(60, 180),
			})
		}

		plan, err := repo.AddPlan(ctx, workouts.Plan{
			UserID:        userID,
			Name:          gofakeit.RandomString([]string{"Push Pull Legs", "Upper Lower", "Full Body", "Strength Block"}) + fmt.Sprintf(" %d", i+1),
			Description:   gofakeit.Sentence(8),
			Difficulty:    difficulties[i%len(difficulties)],
			DurationWeeks: gofakeit.Number(4, 12),
			Exercises:     exercises,
			IsActive:      i == 0,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		})
		if err != nil {
			return fmt.Errorf("add plan: %w", err)
		}

		// a few weeks of sessions for the active plan
		if !plan.IsActive {
			continue
		}
		for d := 0; d < 21; d += gofakeit.Number(1, 3) {
			if _, err := repo.AddSession(ctx, workouts.Session{
				UserID:          userID,
				PlanID:          plan.ID,
				Date:            time.Now().AddDate(0, 0, -d),
				DurationMinutes: gofakeit.Number(30, 90),
				Notes:           gofakeit.Sentence(5),
				Rating:          gofakeit.Number(2, 5),
				CreatedAt:       time.Now(),
			}); err != nil {
				return fmt.Errorf("add session: %w", err)
			}
		}
	}
	return nil
}

func seedMeals(ctx context.Context, repo *nutrition.Repo, userID int) error {
	mealTypes := []string{"breakfast", "lunch", "dinner", "snack"}
	for d := 0; d < 14; d++ {
		for _, mealType := range mealTypes {
			if _, err := repo.Add(ctx, nutrition.Meal{
				UserID:       userID,
				Name:         gofakeit.Dinner(),
				MealType:     mealType,
				Calories:     gofakeit.Number(200, 900),
				ProteinGrams: float64(gofakeit.Number(10, 60)),
				CarbsGrams:   float64(gofakeit.Number(20, 120)),
				FatGrams:     float64(gofakeit.Number(5, 40)),
				ConsumedAt:   time.Now().AddDate(0, 0, -d),
				CreatedAt:    time.Now(),
			}); err != nil {
				return fmt.Errorf("add meal: %w", err)
			}
		}
	}
	return nil
}

func seedMetrics(ctx context.Context, repo *progress.Repo, userID int) error {
	weight := float64(gofakeit.Number(70, 95))
	for w := 8; w >= 0; w-- {
		if _, err := repo.AddMetric(ctx, progress.Metric{
			UserID:         userID,
			WeightKilos:    weight - float64(8-w)*0.3,
			BodyFatPercent: float64(gofakeit.Number(12, 25)),
			MusclePercent:  float64(gofakeit.Number(30, 45)),
			Measurements: map[string]float64{
				"chest": float64(gofakeit.Number(90, 110)),
				"waist": float64(gofakeit.Number(75, 95)),
				"arms":  float64(gofakeit.Number(30, 45)),
			},
			RecordedAt: time.Now().AddDate(0, 0, -w*7),
			CreatedAt:  time.Now(),
		}); err != nil {
			return fmt.Errorf("add metric: %w", err)
		}
	}
	return nil
}

func seedGoals(ctx context.Context, repo *goals.Repo, userID int) error {
	deadline := time.Now().AddDate(0, 3, 0)
	demoGoals := []goals.Goal{
		{
			UserID: userID, Title: "Lose some weight", Category: "weight",
			TargetValue: 80, CurrentValue: 84.5, Unit: "kg", Deadline: &deadline,
		},
		{
			UserID: userID, Title: "Bench 100 kg", Category: "strength",
			TargetValue: 100, CurrentValue: float64(gofakeit.Number(70, 95)), Unit: "kg",
		},
		{
			UserID: userID, Title: "Run 10k", Category: "endurance",
			TargetValue: 10, CurrentValue: float64(gofakeit.Number(3, 8)), Unit: "km",
		},
	}
	for _, g := range demoGoals {
		g.CreatedAt = time.Now()
		g.UpdatedAt = time.Now()
		if _, err := repo.Add(ctx, g); err != nil {
			return fmt.Errorf("add goal: %w", err)
		}
	}
	return nil
}
