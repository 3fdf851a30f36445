// Package submission delivers lead-capture form submissions to the
// spreadsheet gateway, with an explicit fallback store for deliveries that
// fail. The calculation engines never depend on this package; it exists so
// the backup path is an injected collaborator instead of ambient state.
package submission

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Lead is one diagnosis/consultation form submission.
type Lead struct {
	Kind        string    `json:"kind" yaml:"kind"` // "diagnosis" or "consultation"
	Name        string    `json:"name" yaml:"name"`
	Phone       string    `json:"phone" yaml:"phone"`
	Email       string    `json:"email" yaml:"email"`
	Company     string    `json:"company" yaml:"company"`
	Interest    string    `json:"interest" yaml:"interest"`
	Message     string    `json:"message" yaml:"message"`
	SubmittedAt time.Time `json:"submittedAt" yaml:"-"`
}

// Status reports what happened to a submission.
type Status string

const (
	// StatusDelivered means the gateway accepted the lead.
	StatusDelivered Status = "delivered"
	// StatusStored means delivery failed but the lead was kept in the
	// fallback store for later replay.
	StatusStored Status = "stored"
	// StatusLost means both delivery and fallback storage failed.
	StatusLost Status = "lost"
)

// Result is the outcome of a Submit call.
type Result struct {
	Status    Status
	SinkError error
}

// Sink delivers a lead to the external gateway.
type Sink interface {
	Deliver(ctx context.Context, lead Lead) error
}

// FallbackStore keeps undelivered leads for later replay.
type FallbackStore interface {
	Store(ctx context.Context, lead Lead) error
	Pending(ctx context.Context) ([]Lead, error)
	Remove(ctx context.Context, lead Lead) error
}

// Service tries the sink first and falls back to the store. It never returns
// a bare error for a delivery failure; the Result says what actually
// happened so callers can distinguish "saved for later" from "gone".
type Service struct {
	sink   Sink
	store  FallbackStore
	logger zerolog.Logger
}

// NewService wires a submission service. The store may be nil, in which case
// failed deliveries are lost (and reported as such).
func NewService(sink Sink, store FallbackStore, logger zerolog.Logger) *Service {
	return &Service{sink: sink, store: store, logger: logger}
}

// Submit delivers the lead, falling back to the store on failure.
func (s *Service) Submit(ctx context.Context, lead Lead) Result {
	if lead.SubmittedAt.IsZero() {
		lead.SubmittedAt = time.Now().UTC()
	}

	err := s.sink.Deliver(ctx, lead)
	if err == nil {
		s.logger.Info().Str("kind", lead.Kind).Msg("lead delivered")
		return Result{Status: StatusDelivered}
	}

	s.logger.Warn().Err(err).Str("kind", lead.Kind).Msg("lead delivery failed")

	if s.store == nil {
		return Result{Status: StatusLost, SinkError: err}
	}
	if storeErr := s.store.Store(ctx, lead); storeErr != nil {
		s.logger.Error().Err(storeErr).Msg("fallback store failed")
		return Result{Status: StatusLost, SinkError: err}
	}
	return Result{Status: StatusStored, SinkError: err}
}

// Replay attempts to deliver every pending lead from the fallback store,
// removing the ones that go through. Returns how many were delivered.
func (s *Service) Replay(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, nil
	}
	pending, err := s.store.Pending(ctx)
	if err != nil {
		return 0, err
	}

	delivered := 0
	for _, lead := range pending {
		if err := s.sink.Deliver(ctx, lead); err != nil {
			s.logger.Warn().Err(err).Msg("replay delivery failed; keeping lead stored")
			continue
		}
		if err := s.store.Remove(ctx, lead); err != nil {
			s.logger.Error().Err(err).Msg("failed to remove replayed lead")
		}
		delivered++
	}
	return delivered, nil
}
