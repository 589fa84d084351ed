package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/azylka/pulsefit/internal/auth"
	"github.com/azylka/pulsefit/internal/telemetry/tracing"
	"github.com/azylka/pulsefit/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

type usersRepo interface {
	GetByID(ctx context.Context, id int) (*User, error)
	GetPreferences(ctx context.Context, userID int) (*Preferences, error)
	UpdatePreferences(ctx context.Context, prefs Preferences) error
}

type Handler struct {
	repo usersRepo
}

func NewHandler(repo usersRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.me")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	user, err := handler.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get user %d: %s", userID, err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("marshal user %d: %s", userID, err)
		http.Error(w, "failed to get user", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(userJson))
}

func (handler *Handler) HandleGetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.getpreferences")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	prefs, err := handler.repo.GetPreferences(ctx, userID)
	if err != nil {
		log.Errorf("get preferences for user %d: %s", userID, err)
		http.Error(w, "failed to get preferences", http.StatusInternalServerError)
		return
	}

	prefsJson, err := json.Marshal(prefs)
	if err != nil {
		log.Errorf("marshal preferences for user %d: %s", userID, err)
		http.Error(w, "failed to get preferences", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(prefsJson))
}

func (handler *Handler) HandleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.updatepreferences")
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

	var prefs Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		log.Tracef("update preferences, unmarshal json params: %s", err)
		http.Error(w, "update preferences failed", http.StatusBadRequest)
		return
	}

	// preferences always belong to the session user
	prefs.UserID = userID

	if prefs.Units != "" && prefs.Units != "metric" && prefs.Units != "imperial" {
		http.Error(w, "error, invalid units", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdatePreferences(ctx, prefs); err != nil {
		log.Errorf("update preferences for user %d: %s", userID, err)
		http.Error(w, "failed to update preferences", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}
