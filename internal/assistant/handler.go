package assistant

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=assistant_test

type voiceDispatcher interface {
	Handle(ctx context.Context, utterance string) (Response, error)
}

type ProcessRequest struct {
	Command string `json:"command"`
}

type ProcessResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	dispatcher voiceDispatcher
}

func NewHandler(dispatcher voiceDispatcher) *Handler {
	return &Handler{
		dispatcher: dispatcher,
	}
}

func (handler *Handler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.assistant.process")
	defer span.End()

	if _, ok := auth.UserIDFromContext(ctx); !ok {
		writeJSONError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var procReq ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&procReq); err != nil {
		log.Tracef("process voice command, unmarshal json params: %s", err)
		writeJSONError(w, "Command is required", http.StatusBadRequest)
		return
	}

	if procReq.Command == "" {
		writeJSONError(w, "Command is required", http.StatusBadRequest)
		return
	}

	dispatcherResp, err := handler.dispatcher.Handle(ctx, procReq.Command)
	if err != nil {
		if errors.Is(err, ErrBusy) {
			http.Error(w, "busy, try again", http.StatusTooManyRequests)
			return
		}
		log.Errorf("process voice command: %s", err)
		http.Error(w, "failed to process command", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(ProcessResponse{
		Response: dispatcherResp.Text,
		Success:  dispatcherResp.Success,
	})
	if err != nil {
		log.Errorf("marshal voice command response: %s", err)
		http.Error(w, "failed to process command", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusOK)
}

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	respBytes, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		http.Error(w, message, statusCode)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, statusCode)
}
