package stats

import (
	"encoding/json"
	"net/http"

	"github.com/azylka/pulsefit/internal/auth"
	"github.com/azylka/pulsefit/internal/telemetry/tracing"
	"github.com/azylka/pulsefit/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	aggregator *Aggregator
}

func NewHandler(aggregator *Aggregator) *Handler {
	return &Handler{
		aggregator: aggregator,
	}
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.overview")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	overview, err := handler.aggregator.Overview(ctx, userID)
	if err != nil {
		log.Errorf("failed to get stats overview for user %d: %s", userID, err)
		http.Error(w, "get stats overview failed", http.StatusInternalServerError)
		return
	}

	overviewBytes, err := json.Marshal(overview)
	if err != nil {
		http.Error(w, "get stats overview failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, overviewBytes, http.StatusOK)
}
