package trainers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/azylka/pulsefit/internal/auth"
	"github.com/azylka/pulsefit/internal/telemetry/tracing"
	"github.com/azylka/pulsefit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=trainers_mocks_test.go -package=trainers_test

type trainersRepo interface {
	GetByUserID(ctx context.Context, userID int) (*Trainer, error)
	Get(ctx context.Context, id int) (*Trainer, error)
	List(ctx context.Context) ([]Trainer, error)
	Upsert(ctx context.Context, trainer Trainer) (*Trainer, error)
	AddClientLink(ctx context.Context, link ClientLink) (*ClientLink, error)
	ListClientLinks(ctx context.Context, trainerID int) ([]ClientLink, error)
	UpdateClientLinkStatus(ctx context.Context, trainerID, clientUserID int, status string) error
}

type Handler struct {
	repo trainersRepo
}

func NewHandler(repo trainersRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

// HandleList serves the public trainer directory.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.list")
	defer span.End()

	trainers, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("failed to list trainers: %s", err)
		http.Error(w, "list trainers failed", http.StatusInternalServerError)
		return
	}

	trainersBytes, err := json.Marshal(trainers)
	if err != nil {
		http.Error(w, "list trainers failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, trainersBytes, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.get")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, trainer id NaN", http.StatusBadRequest)
		return
	}

	trainer, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			http.Error(w, "trainer not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get trainer %d: %s", id, err)
		http.Error(w, "get trainer failed", http.StatusInternalServerError)
		return
	}

	trainerBytes, err := json.Marshal(trainer)
	if err != nil {
		http.Error(w, "get trainer failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, trainerBytes, http.StatusOK)
}

func (handler *Handler) HandleGetMyProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.getmyprofile")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	trainer, err := handler.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			http.Error(w, "trainer profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get trainer profile for user %d: %s", userID, err)
		http.Error(w, "get trainer profile failed", http.StatusInternalServerError)
		return
	}

	trainerBytes, err := json.Marshal(trainer)
	if err != nil {
		http.Error(w, "get trainer profile failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, trainerBytes, http.StatusOK)
}

func (handler *Handler) HandleUpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.updatemyprofile")
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

	var trainer Trainer
	if err := json.NewDecoder(r.Body).Decode(&trainer); err != nil {
		log.Errorf("update trainer profile, unmarshal json params: %s", err)
		http.Error(w, "update trainer profile failed", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(trainer.Bio) == "" {
		http.Error(w, "error, bio empty", http.StatusBadRequest)
		return
	}
	if trainer.HourlyRate < 0 {
		http.Error(w, "error, hourly rate negative", http.StatusBadRequest)
		return
	}

	// the session owns the profile, whatever the payload says
	trainer.UserID = userID
	trainer.CreatedAt = time.Now()

	updated, err := handler.repo.Upsert(ctx, trainer)
	if err != nil {
		log.Errorf("failed to upsert trainer profile for user %d: %s", userID, err)
		http.Error(w, "update trainer profile failed", http.StatusInternalServerError)
		return
	}

	updatedBytes, err := json.Marshal(updated)
	if err != nil {
		http.Error(w, "update trainer profile failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, updatedBytes, http.StatusOK)
}

func (handler *Handler) HandleAddClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.addclient")
	defer span.End()

	trainer, ok := handler.myTrainerProfile(ctx, w)
	if !ok {
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var link ClientLink
	if err := json.NewDecoder(r.Body).Decode(&link); err != nil {
		log.Errorf("add client link, unmarshal json params: %s", err)
		http.Error(w, "add client link failed", http.StatusBadRequest)
		return
	}

	if link.ClientUserID <= 0 {
		http.Error(w, "error, client user id invalid", http.StatusBadRequest)
		return
	}
	if link.Status == "" {
		link.Status = "pending"
	}
	if !validLinkStatus[link.Status] {
		http.Error(w, "error, invalid status", http.StatusBadRequest)
		return
	}

	link.TrainerID = trainer.ID
	link.CreatedAt = time.Now()

	added, err := handler.repo.AddClientLink(ctx, link)
	if err != nil {
		log.Errorf("failed to add client link for trainer %d: %s", trainer.ID, err)
		http.Error(w, "add client link failed", http.StatusInternalServerError)
		return
	}

	addedBytes, err := json.Marshal(added)
	if err != nil {
		http.Error(w, "add client link failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedBytes, http.StatusCreated)
}

func (handler *Handler) HandleListClients(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.listclients")
	defer span.End()

	trainer, ok := handler.myTrainerProfile(ctx, w)
	if !ok {
		return
	}

	links, err := handler.repo.ListClientLinks(ctx, trainer.ID)
	if err != nil {
		log.Errorf("failed to list client links for trainer %d: %s", trainer.ID, err)
		http.Error(w, "list client links failed", http.StatusInternalServerError)
		return
	}

	linksBytes, err := json.Marshal(links)
	if err != nil {
		http.Error(w, "list client links failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, linksBytes, http.StatusOK)
}

func (handler *Handler) HandleUpdateClientStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.updateclientstatus")
	defer span.End()

	trainer, ok := handler.myTrainerProfile(ctx, w)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	clientUserID, err := strconv.Atoi(vars["clientUserId"])
	if err != nil {
		http.Error(w, "error, client user id NaN", http.StatusBadRequest)
		return
	}

	var params struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "update client link failed", http.StatusBadRequest)
		return
	}
	if !validLinkStatus[params.Status] {
		http.Error(w, "error, invalid status", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateClientLinkStatus(ctx, trainer.ID, clientUserID, params.Status); err != nil {
		if errors.Is(err, ErrClientLinkNotFound) {
			http.Error(w, "client link not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update client link status for trainer %d: %s", trainer.ID, err)
		http.Error(w, "update client link failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, `{"updated":true}`)
}

// myTrainerProfile resolves the calling user's trainer profile, writing the
// error response when it cannot.
func (handler *Handler) myTrainerProfile(ctx context.Context, w http.ResponseWriter) (*Trainer, bool) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return nil, false
	}

	trainer, err := handler.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			http.Error(w, "trainer profile not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("failed to get trainer profile for user %d: %s", userID, err)
		http.Error(w, "get trainer profile failed", http.StatusInternalServerError)
		return nil, false
	}

	return trainer, true
}
