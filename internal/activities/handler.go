package activities

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/azylka/pulsefit/internal/auth"
	"github.com/azylka/pulsefit/internal/telemetry/tracing"
	"github.com/azylka/pulsefit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=activities_mocks_test.go -package=activities_test

type activitiesRepo interface {
	Add(ctx context.Context, activity Activity) (*Activity, error)
	List(ctx context.Context, params ListParams) ([]Activity, error)
	Delete(ctx context.Context, userID int, id string) error
}

type Handler struct {
	repo activitiesRepo
}

func NewHandler(repo activitiesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

type DeleteResponse struct {
	DeletedID string `json:"deletedId"`
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.add")
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

	var activity Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		log.Errorf("add activity, unmarshal json params: %s", err)
		http.Error(w, "add activity failed", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(activity.Type) == "" {
		http.Error(w, "error, activity type empty", http.StatusBadRequest)
		return
	}
	if activity.DurationMinutes <= 0 {
		http.Error(w, "error, duration must be positive", http.StatusBadRequest)
		return
	}
	if activity.OccurredAt.IsZero() {
		activity.OccurredAt = time.Now()
	}

	activity.UserID = userID
	activity.CreatedAt = time.Now()

	added, err := handler.repo.Add(ctx, activity)
	if err != nil {
		log.Errorf("failed to add activity for user %d: %s", userID, err)
		http.Error(w, "add activity failed", http.StatusInternalServerError)
		return
	}

	addedBytes, err := json.Marshal(added)
	if err != nil {
		log.Errorf("marshal added activity: %s", err)
		http.Error(w, "add activity failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedBytes, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	params := ListParams{UserID: userID}
	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		from, err := time.Parse(time.RFC3339, fromParam)
		if err != nil {
			http.Error(w, "invalid from parameter", http.StatusBadRequest)
			return
		}
		params.From = &from
	}
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		to, err := time.Parse(time.RFC3339, toParam)
		if err != nil {
			http.Error(w, "invalid to parameter", http.StatusBadRequest)
			return
		}
		params.To = &to
	}
	if (params.From == nil) != (params.To == nil) {
		http.Error(w, "from and to must be given together", http.StatusBadRequest)
		return
	}

	activities, err := handler.repo.List(ctx, params)
	if err != nil {
		log.Errorf("failed to list activities for user %d: %s", userID, err)
		http.Error(w, "list activities failed", http.StatusInternalServerError)
		return
	}

	activitiesBytes, err := json.Marshal(activities)
	if err != nil {
		log.Errorf("marshal activities: %s", err)
		http.Error(w, "list activities failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, activitiesBytes, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.activities.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			http.Error(w, "activity not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete activity %s for user %d: %s", id, userID, err)
		http.Error(w, "delete activity failed", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(DeleteResponse{DeletedID: id})
	if err != nil {
		http.Error(w, "delete activity failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}
