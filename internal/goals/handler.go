package goals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/azylka/pulsefit/internal/auth"
	"github.com/azylka/pulsefit/internal/telemetry/tracing"
	"github.com/azylka/pulsefit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=goals_mocks_test.go -package=goals_test

type goalsRepo interface {
	Add(ctx context.Context, goal Goal) (*Goal, error)
	List(ctx context.Context, userID int, activeOnly bool) ([]Goal, error)
	Update(ctx context.Context, goal *Goal) error
	Delete(ctx context.Context, userID, id int) error
}

type DeleteGoalResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListGoalsResponse struct {
	Goals []Goal `json:"goals"`
	Total int    `json:"total"`
}

type Handler struct {
	repo goalsRepo
}

func NewHandler(repo goalsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.add")
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

	var goal Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Tracef("new goal, unmarshal json params: %s", err)
		http.Error(w, "add goal failed", http.StatusBadRequest)
		return
	}

	if goal.Title == "" {
		http.Error(w, "error, goal title empty", http.StatusBadRequest)
		return
	}
	if goal.TargetValue <= 0 {
		http.Error(w, "error, target value must be positive", http.StatusBadRequest)
		return
	}

	goal.UserID = userID
	now := time.Now()
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = now
	}
	goal.UpdatedAt = now

	addedGoal, err := handler.repo.Add(ctx, goal)
	if err != nil {
		log.Errorf("failed to add goal [%s] for user %d: %s", goal.Title, userID, err)
		http.Error(w, "error, failed to add goal", http.StatusInternalServerError)
		return
	}

	goalJson, err := json.Marshal(addedGoal)
	if err != nil {
		log.Errorf("marshal added goal: %s", err)
		http.Error(w, "error, failed to add goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"

	goals, err := handler.repo.List(ctx, userID, activeOnly)
	if err != nil {
		log.Errorf("list goals for user %d: %s", userID, err)
		http.Error(w, "failed to list goals", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListGoalsResponse{
		Goals: goals,
		Total: len(goals),
	})
	if err != nil {
		log.Errorf("marshal goals: %s", err)
		http.Error(w, "failed to list goals", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid goal id", http.StatusBadRequest)
		return
	}

	var goal Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Tracef("update goal, unmarshal json params: %s", err)
		http.Error(w, "update goal failed", http.StatusBadRequest)
		return
	}

	goal.ID = id
	goal.UserID = userID
	goal.UpdatedAt = time.Now()

	// reaching the target marks the goal achieved
	if goal.TargetValue > 0 && goal.CurrentValue >= goal.TargetValue {
		goal.Achieved = true
	}

	if err := handler.repo.Update(ctx, &goal); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("update goal %d: %s", id, err)
		http.Error(w, "failed to update goal", http.StatusInternalServerError)
		return
	}

	goalJson, err := json.Marshal(goal)
	if err != nil {
		log.Errorf("marshal updated goal: %s", err)
		http.Error(w, "failed to update goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(goalJson))
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid goal id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete goal %d: %s", id, err)
		http.Error(w, "failed to delete goal", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteGoalResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete goal response: %s", err)
		http.Error(w, "failed to delete goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}
