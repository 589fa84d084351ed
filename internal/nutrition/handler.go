package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/azylka/pulsefit/internal/auth"
	"github.com/azylka/pulsefit/internal/telemetry/metrics"
	"github.com/azylka/pulsefit/internal/telemetry/tracing"
	"github.com/azylka/pulsefit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=nutrition_mocks_test.go -package=nutrition_test

type mealsRepo interface {
	Add(ctx context.Context, meal Meal) (*Meal, error)
	List(ctx context.Context, params ListParams) ([]Meal, error)
	Delete(ctx context.Context, userID, id int) error
}

type DeleteMealResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListMealsResponse struct {
	Meals []Meal `json:"meals"`
	Total int    `json:"total"`
}

type Handler struct {
	repo     mealsRepo
	analyzer *Analyzer
	metrics  *metrics.Manager
}

func NewHandler(repo mealsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:     repo,
		analyzer: NewAnalyzer(repo),
		metrics:  metricsManager,
	}
}

func (handler *Handler) HandleAddMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.addmeal")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var meal Meal
	if err := json.NewDecoder(r.Body).Decode(&meal); err != nil {
		log.Tracef("new meal, unmarshal json params: %s", err)
		http.Error(w, "add meal failed", http.StatusBadRequest)
		return
	}

	if meal.Name == "" {
		http.Error(w, "error, meal name empty", http.StatusBadRequest)
		return
	}
	if !validMealType(meal.MealType) {
		http.Error(w, "error, invalid meal type", http.StatusBadRequest)
		return
	}
	if meal.Calories < 0 {
		http.Error(w, "error, negative calories", http.StatusBadRequest)
		return
	}

	meal.UserID = userID
	if meal.ConsumedAt.IsZero() {
		meal.ConsumedAt = time.Now()
	}
	if meal.CreatedAt.IsZero() {
		meal.CreatedAt = time.Now()
	}

	addedMeal, err := handler.repo.Add(ctx, meal)
	if err != nil {
		log.Errorf("failed to add meal [%s] for user %d: %s", meal.Name, userID, err)
		http.Error(w, "error, failed to add meal", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterMealsLogged.Inc()

	mealJson, err := json.Marshal(addedMeal)
	if err != nil {
		log.Errorf("marshal added meal: %s", err)
		http.Error(w, "error, failed to add meal", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, mealJson, http.StatusCreated)
}

func (handler *Handler) HandleListMeals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.listmeals")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	params := ListParams{
		UserID:   userID,
		MealType: r.URL.Query().Get("type"),
	}
	if params.MealType != "" && !validMealType(params.MealType) {
		http.Error(w, "error, invalid meal type", http.StatusBadRequest)
		return
	}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		day, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			http.Error(w, "error, invalid date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		dayEnd := day.Add(24 * time.Hour)
		params.From = &day
		params.To = &dayEnd
	}

	meals, err := handler.repo.List(ctx, params)
	if err != nil {
		log.Errorf("list meals for user %d: %s", userID, err)
		http.Error(w, "failed to list meals", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListMealsResponse{
		Meals: meals,
		Total: len(meals),
	})
	if err != nil {
		log.Errorf("marshal meals: %s", err)
		http.Error(w, "failed to list meals", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleDeleteMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.deletemeal")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid meal id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrMealNotFound) {
			http.Error(w, "meal not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete meal %d: %s", id, err)
		http.Error(w, "failed to delete meal", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteMealResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete meal response: %s", err)
		http.Error(w, "failed to delete meal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleDailyCalories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.dailycalories")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	day := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			http.Error(w, "error, invalid date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	summary, err := handler.analyzer.DailySummary(ctx, userID, day)
	if err != nil {
		log.Errorf("daily calories for user %d: %s", userID, err)
		http.Error(w, "failed to get daily calories", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal daily summary: %s", err)
		http.Error(w, "failed to get daily calories", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(summaryJson))
}
