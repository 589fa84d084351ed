package exercises

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/azylka/pulsefit/internal/telemetry/tracing"
	"github.com/azylka/pulsefit/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	List(ctx context.Context, params ListParams) ([]Exercise, error)
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

// HandleList serves the exercise library. The library is shared content,
// no session required.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	query := r.URL.Query()
	params := ListParams{
		Search:      query.Get("search"),
		MuscleGroup: query.Get("muscleGroup"),
		Equipment:   query.Get("equipment"),
		Difficulty:  query.Get("difficulty"),
	}
	if limitParam := query.Get("limit"); limitParam != "" {
		limit, err := strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			http.Error(w, "invalid limit parameter", http.StatusBadRequest)
			return
		}
		params.Limit = limit
	}

	exercises, err := handler.repo.List(ctx, params)
	if err != nil {
		log.Errorf("failed to list exercises: %s", err)
		http.Error(w, "list exercises failed", http.StatusInternalServerError)
		return
	}

	exercisesBytes, err := json.Marshal(exercises)
	if err != nil {
		log.Errorf("marshal exercises: %s", err)
		http.Error(w, "list exercises failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, exercisesBytes, http.StatusOK)
}
