package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/azylka/pulsefit/internal/telemetry/metrics"
	"github.com/azylka/pulsefit/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=dispatcher_mocks_test.go -package=assistant

// ErrBusy is returned when an utterance arrives while a previous
// one is still being processed. New utterances are dropped, not queued.
var ErrBusy = errors.New("assistant busy")

const fallbackResponse = "I'm sorry, I'm having trouble processing your request right now. Please try again."

const personaPreamble = `You are a fitness assistant AI. Help the user with:
1. Exercise recommendations and form guidance
2. Nutrition advice and meal planning
3. Workout scheduling and tracking
4. Progress monitoring and motivation
5. Health and wellness tips
Keep responses concise, encouraging, and actionable.`

// Completer produces one AI completion for a prompt. Implemented by the
// Gemini and OpenAI clients.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Response is what the caller relays back to the client. Success is false
// only when the reply degraded to the fallback message.
type Response struct {
	Text    string
	Success bool
}

type Dispatcher struct {
	completer Completer
	navigate  func(path string)
	metrics   *metrics.Manager

	mutex sync.Mutex
	busy  bool
}

func NewDispatcher(
	completer Completer,
	navigate func(path string),
	metricsManager *metrics.Manager,
) *Dispatcher {
	return &Dispatcher{
		completer: completer,
		navigate:  navigate,
		metrics:   metricsManager,
	}
}

// Handle processes one utterance, either triggering navigation or asking
// the completer. One utterance at a time, overlapping calls get ErrBusy.
func (d *Dispatcher) Handle(ctx context.Context, utterance string) (resp Response, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistant.dispatcher.handle")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	d.mutex.Lock()
	if d.busy {
		d.mutex.Unlock()
		span.SetStatus(codes.Error, "busy")
		return Response{}, ErrBusy
	}
	d.busy = true
	d.mutex.Unlock()
	defer func() {
		d.mutex.Lock()
		d.busy = false
		d.mutex.Unlock()
	}()

	c := Classify(utterance)

	if c.Kind == KindNavigation {
		d.metrics.CounterVoiceCommands.With(prometheus.Labels{"kind": "navigation"}).Inc()
		if d.navigate != nil {
			d.navigate(c.Target)
		}
		keyword := strings.TrimPrefix(c.Target, "/")
		return Response{
			Text:    "Navigating to " + keyword,
			Success: true,
		}, nil
	}

	d.metrics.CounterVoiceCommands.With(prometheus.Labels{"kind": "query"}).Inc()

	prompt := personaPreamble + "\n\nUser: " + c.Text + "\nAssistant:"

	start := time.Now()
	completion, completeErr := d.completer.Complete(ctx, prompt)
	d.metrics.HistAssistantReplyDuration.Observe(time.Since(start).Seconds())

	if completeErr != nil {
		// best-effort feature, never propagate the failure to the user
		log.Errorf("assistant completion failed: %s", completeErr)
		d.metrics.CounterAssistantFallbacks.Inc()
		span.RecordError(completeErr)
		return Response{
			Text:    fallbackResponse,
			Success: false,
		}, nil
	}

	return Response{
		Text:    completion,
		Success: true,
	}, nil
}
