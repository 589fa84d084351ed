package workouts

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/azylka/pulsefit/internal/auth"
	"github.com/azylka/pulsefit/internal/telemetry/tracing"
	"github.com/azylka/pulsefit/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=videos_mocks_test.go -package=workouts_test

type videosRepo interface {
	List(ctx context.Context) ([]Video, error)
}

type ListVideosResponse struct {
	Videos []Video `json:"videos"`
	Total  int     `json:"total"`
}

type VideosHandler struct {
	repo videosRepo
}

func NewVideosHandler(repo videosRepo) *VideosHandler {
	return &VideosHandler{
		repo: repo,
	}
}

func (handler *VideosHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listvideos")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	videos, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list workout videos for user %d: %s", userID, err)
		http.Error(w, "failed to list workout videos", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListVideosResponse{
		Videos: videos,
		Total:  len(videos),
	})
	if err != nil {
		log.Errorf("marshal workout videos: %s", err)
		http.Error(w, "failed to list workout videos", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
