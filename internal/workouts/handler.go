package workouts

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

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	AddPlan(ctx context.Context, plan Plan) (*Plan, error)
	GetPlan(ctx context.Context, userID, id int) (*Plan, error)
	ListPlans(ctx context.Context, params ListPlansParams) ([]Plan, error)
	UpdatePlan(ctx context.Context, plan *Plan) error
	DeletePlan(ctx context.Context, userID, id int) error
	AddSession(ctx context.Context, session Session) (*Session, error)
	ListSessions(ctx context.Context, params ListSessionsParams) ([]Session, error)
	DeleteSession(ctx context.Context, userID, id int) error
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type UpdatePlanResponse struct {
	UpdatedID int `json:"updatedId"`
}

type ListPlansResponse struct {
	Plans []Plan `json:"plans"`
	Total int    `json:"total"`
}

type ListSessionsResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo    workoutsRepo
	metrics *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleAddPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addplan")
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

	var plan Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Tracef("new workout plan, unmarshal json params: %s", err)
		http.Error(w, "add workout plan failed", http.StatusBadRequest)
		return
	}

	if plan.Name == "" {
		http.Error(w, "error, plan name empty", http.StatusBadRequest)
		return
	}
	if plan.Difficulty != "" && !validDifficulty(plan.Difficulty) {
		http.Error(w, "error, invalid difficulty", http.StatusBadRequest)
		return
	}

	plan.UserID = userID
	now := time.Now()
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = now
	}
	plan.UpdatedAt = now

	addedPlan, err := handler.repo.AddPlan(ctx, plan)
	if err != nil {
		log.Errorf("failed to add workout plan [%s] for user %d: %s", plan.Name, userID, err)
		http.Error(w, "error, failed to add workout plan", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(addedPlan)
	if err != nil {
		log.Errorf("marshal added workout plan: %s", err)
		http.Error(w, "error, failed to add workout plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusCreated)
}

func (handler *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.getplan")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid plan id", http.StatusBadRequest)
		return
	}

	plan, err := handler.repo.GetPlan(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "workout plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout plan %d: %s", id, err)
		http.Error(w, "failed to get workout plan", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("marshal workout plan %d: %s", id, err)
		http.Error(w, "failed to get workout plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(planJson))
}

func (handler *Handler) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listplans")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"

	plans, err := handler.repo.ListPlans(ctx, ListPlansParams{
		UserID:     userID,
		ActiveOnly: activeOnly,
	})
	if err != nil {
		log.Errorf("list workout plans for user %d: %s", userID, err)
		http.Error(w, "failed to list workout plans", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListPlansResponse{
		Plans: plans,
		Total: len(plans),
	})
	if err != nil {
		log.Errorf("marshal workout plans: %s", err)
		http.Error(w, "failed to list workout plans", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.updateplan")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid plan id", http.StatusBadRequest)
		return
	}

	var plan Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Tracef("update workout plan, unmarshal json params: %s", err)
		http.Error(w, "update workout plan failed", http.StatusBadRequest)
		return
	}

	if plan.Difficulty != "" && !validDifficulty(plan.Difficulty) {
		http.Error(w, "error, invalid difficulty", http.StatusBadRequest)
		return
	}

	plan.ID = id
	plan.UserID = userID
	plan.UpdatedAt = time.Now()

	if err := handler.repo.UpdatePlan(ctx, &plan); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "workout plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("update workout plan %d: %s", id, err)
		http.Error(w, "failed to update workout plan", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(UpdatePlanResponse{UpdatedID: id})
	if err != nil {
		log.Errorf("marshal update plan response: %s", err)
		http.Error(w, "failed to update workout plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleDeletePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteplan")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid plan id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeletePlan(ctx, userID, id); err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "workout plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout plan %d: %s", id, err)
		http.Error(w, "failed to delete workout plan", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete plan response: %s", err)
		http.Error(w, "failed to delete workout plan", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleAddSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addsession")
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

	var session Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Tracef("new workout session, unmarshal json params: %s", err)
		http.Error(w, "add workout session failed", http.StatusBadRequest)
		return
	}

	if session.DurationMinutes <= 0 {
		http.Error(w, "error, session duration must be positive", http.StatusBadRequest)
		return
	}
	if session.Rating < 0 || session.Rating > 5 {
		http.Error(w, "error, rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	session.UserID = userID
	if session.Date.IsZero() {
		session.Date = time.Now()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	addedSession, err := handler.repo.AddSession(ctx, session)
	if err != nil {
		log.Errorf("failed to add workout session for user %d: %s", userID, err)
		http.Error(w, "error, failed to add workout session", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutSessions.Inc()

	sessionJson, err := json.Marshal(addedSession)
	if err != nil {
		log.Errorf("marshal added workout session: %s", err)
		http.Error(w, "error, failed to add workout session", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusCreated)
}

func (handler *Handler) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listsessions")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	params := ListSessionsParams{UserID: userID}
	if planIDStr := r.URL.Query().Get("planId"); planIDStr != "" {
		planID, err := strconv.Atoi(planIDStr)
		if err != nil {
			http.Error(w, "error, invalid plan id", http.StatusBadRequest)
			return
		}
		params.PlanID = planID
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "error, invalid limit", http.StatusBadRequest)
			return
		}
		params.Limit = limit
	}

	sessions, err := handler.repo.ListSessions(ctx, params)
	if err != nil {
		log.Errorf("list workout sessions for user %d: %s", userID, err)
		http.Error(w, "failed to list workout sessions", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListSessionsResponse{
		Sessions: sessions,
		Total:    len(sessions),
	})
	if err != nil {
		log.Errorf("marshal workout sessions: %s", err)
		http.Error(w, "failed to list workout sessions", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deletesession")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, invalid session id", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteSession(ctx, userID, id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout session %d: %s", id, err)
		http.Error(w, "failed to delete workout session", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteResponse{DeletedID: id})
	if err != nil {
		log.Errorf("marshal delete session response: %s", err)
		http.Error(w, "failed to delete workout session", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(respJson))
}
