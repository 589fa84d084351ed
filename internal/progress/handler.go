package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/azylka/pulsefit/internal/auth"
	"github.com/azylka/pulsefit/internal/file_box"
	"github.com/azylka/pulsefit/internal/telemetry/tracing"
	"github.com/azylka/pulsefit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// 15 MB tops for a progress photo
const maxUploadedFileSize = 15 << 20

//go:generate mockgen -source=$GOFILE -destination=progress_mocks_test.go -package=progress_test

type progressRepo interface {
	AddMetric(ctx context.Context, metric Metric) (*Metric, error)
	ListMetrics(ctx context.Context, userID int) ([]Metric, error)
	DeleteMetric(ctx context.Context, userID, id int) error
	AddPhoto(ctx context.Context, photo Photo) (*Photo, error)
	ListPhotos(ctx context.Context, userID int) ([]Photo, error)
	GetPhoto(ctx context.Context, userID, id int) (*Photo, error)
	DeletePhoto(ctx context.Context, userID, id int) error
}

type photoStore interface {
	Save(ctx context.Context, params file_box.SaveFileParams) (int64, error)
	Open(ctx context.Context, userID int, id int64) (*file_box.StoredFile, io.ReadCloser, error)
	Delete(ctx context.Context, userID int, id int64) error
}

type Handler struct {
	repo  progressRepo
	store photoStore
}

func NewHandler(repo progressRepo, store photoStore) *Handler {
	return &Handler{
		repo:  repo,
		store: store,
	}
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

func (handler *Handler) HandleAddMetric(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.addmetric")
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

	var metric Metric
	if err := json.NewDecoder(r.Body).Decode(&metric); err != nil {
		log.Errorf("add metric, unmarshal json params: %s", err)
		http.Error(w, "add metric failed", http.StatusBadRequest)
		return
	}

	if metric.WeightKilos < 0 || metric.BodyFatPercent < 0 || metric.MusclePercent < 0 {
		http.Error(w, "error, negative measurement", http.StatusBadRequest)
		return
	}
	if metric.RecordedAt.IsZero() {
		metric.RecordedAt = time.Now()
	}

	metric.UserID = userID
	metric.CreatedAt = time.Now()

	added, err := handler.repo.AddMetric(ctx, metric)
	if err != nil {
		log.Errorf("failed to add metric for user %d: %s", userID, err)
		http.Error(w, "add metric failed", http.StatusInternalServerError)
		return
	}

	addedBytes, err := json.Marshal(added)
	if err != nil {
		http.Error(w, "add metric failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedBytes, http.StatusCreated)
}

func (handler *Handler) HandleListMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.listmetrics")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	metrics, err := handler.repo.ListMetrics(ctx, userID)
	if err != nil {
		log.Errorf("failed to list metrics for user %d: %s", userID, err)
		http.Error(w, "list metrics failed", http.StatusInternalServerError)
		return
	}

	metricsBytes, err := json.Marshal(metrics)
	if err != nil {
		http.Error(w, "list metrics failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, metricsBytes, http.StatusOK)
}

func (handler *Handler) HandleDeleteMetric(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.deletemetric")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, metric id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteMetric(ctx, userID, id); err != nil {
		if errors.Is(err, ErrMetricNotFound) {
			http.Error(w, "metric not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete metric %d for user %d: %s", id, userID, err)
		http.Error(w, "delete metric failed", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(DeleteResponse{DeletedID: id})
	if err != nil {
		http.Error(w, "delete metric failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}

func (handler *Handler) HandleUploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.uploadphoto")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadedFileSize); err != nil {
		log.Errorf("upload photo, parse multipart form: %s", err)
		http.Error(w, "internal error or file too big", http.StatusBadRequest)
		return
	}

	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		http.Error(w, "error, photo file missing", http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileType := "unknown"
	if t, ok := fileHeader.Header["Content-Type"]; ok && len(t) > 0 {
		fileType = t[0]
	}

	takenAt := time.Now()
	if takenAtParam := r.FormValue("takenAt"); takenAtParam != "" {
		parsed, err := time.Parse(time.RFC3339, takenAtParam)
		if err != nil {
			http.Error(w, "invalid takenAt parameter", http.StatusBadRequest)
			return
		}
		takenAt = parsed
	}

	fileID, err := handler.store.Save(ctx, file_box.SaveFileParams{
		UserID:   userID,
		Filename: fileHeader.Filename,
		FileType: fileType,
		Size:     fileHeader.Size,
		File:     file,
	})
	if err != nil {
		log.Errorf("failed to store photo for user %d: %s", userID, err)
		http.Error(w, "upload photo failed", http.StatusInternalServerError)
		return
	}

	photo, err := handler.repo.AddPhoto(ctx, Photo{
		UserID:    userID,
		Caption:   r.FormValue("caption"),
		TakenAt:   takenAt,
		FileID:    fileID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.Errorf("failed to add photo row for user %d: %s", userID, err)
		// keep the store and the table in sync
		if removeErr := handler.store.Delete(ctx, userID, fileID); removeErr != nil {
			log.Errorf("failed to remove stored file %d after db error: %s", fileID, removeErr)
		}
		http.Error(w, "upload photo failed", http.StatusInternalServerError)
		return
	}

	photoBytes, err := json.Marshal(photo)
	if err != nil {
		http.Error(w, "upload photo failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, photoBytes, http.StatusCreated)
}

func (handler *Handler) HandleListPhotos(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.listphotos")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	photos, err := handler.repo.ListPhotos(ctx, userID)
	if err != nil {
		log.Errorf("failed to list photos for user %d: %s", userID, err)
		http.Error(w, "list photos failed", http.StatusInternalServerError)
		return
	}

	photosBytes, err := json.Marshal(photos)
	if err != nil {
		http.Error(w, "list photos failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, photosBytes, http.StatusOK)
}

// HandleGetPhotoImage streams the photo binary back to the client.
func (handler *Handler) HandleGetPhotoImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.getphotoimage")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, photo id NaN", http.StatusBadRequest)
		return
	}

	photo, err := handler.repo.GetPhoto(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			http.Error(w, "photo not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get photo %d for user %d: %s", id, userID, err)
		http.Error(w, "get photo failed", http.StatusInternalServerError)
		return
	}

	storedFile, src, err := handler.store.Open(ctx, userID, photo.FileID)
	if err != nil {
		log.Errorf("failed to open stored file %d: %s", photo.FileID, err)
		http.Error(w, "get photo failed", http.StatusInternalServerError)
		return
	}
	defer src.Close()

	w.Header().Set("Content-Type", storedFile.Type)
	w.Header().Set("Content-Length", strconv.FormatInt(storedFile.Size, 10))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", storedFile.Name))
	if _, err := io.Copy(w, src); err != nil {
		log.Errorf("failed to write photo %d content: %s", id, err)
	}
}

func (handler *Handler) HandleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.deletephoto")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, photo id NaN", http.StatusBadRequest)
		return
	}

	photo, err := handler.repo.GetPhoto(ctx, userID, id)
	if err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			http.Error(w, "photo not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get photo %d for user %d: %s", id, userID, err)
		http.Error(w, "delete photo failed", http.StatusInternalServerError)
		return
	}

	if err := handler.repo.DeletePhoto(ctx, userID, id); err != nil {
		log.Errorf("failed to delete photo %d for user %d: %s", id, userID, err)
		http.Error(w, "delete photo failed", http.StatusInternalServerError)
		return
	}

	if err := handler.store.Delete(ctx, userID, photo.FileID); err != nil {
		// row is gone, the orphaned file gets logged and left behind
		log.Errorf("failed to delete stored file %d for photo %d: %s", photo.FileID, id, err)
	}

	respBytes, err := json.Marshal(DeleteResponse{DeletedID: id})
	if err != nil {
		http.Error(w, "delete photo failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}
