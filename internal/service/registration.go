// Package service runs registration submissions through validation and
// pricing before handing them to the store.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reach-summit/summit-api/internal/pricing"
	"github.com/reach-summit/summit-api/internal/registration"
	"github.com/reach-summit/summit-api/internal/store"
)

var (
	// ErrStore hides the underlying storage failure from callers.
	ErrStore = errors.New("registration store unavailable")
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("registration not found")
)

type IndividualReceipt struct {
	ID     string         `json:"id"`
	Amount pricing.Amount `json:"amount"`
}

type GroupReceipt struct {
	ID       string         `json:"id"`
	RawTotal pricing.Amount `json:"rawTotal"`
	Discount pricing.Amount `json:"discount"`
	Total    pricing.Amount `json:"total"`
}

type Service struct {
	store  store.Store
	engine *pricing.Engine
	log    *zap.Logger
	now    func() time.Time
	newID  func() (uuid.UUID, error)
}

type Option func(*Service)

// WithClock replaces the time source used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator replaces the record ID source.
func WithIDGenerator(gen func() (uuid.UUID, error)) Option {
	return func(s *Service) { s.newID = gen }
}

func New(st store.Store, engine *pricing.Engine, log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		store:  st,
		engine: engine,
		log:    log,
		now:    time.Now,
		newID:  uuid.NewV7,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) SubmitIndividual(ctx context.Context, in registration.IndividualInput) (IndividualReceipt, error) {
	ind, err := registration.ParseIndividual(in)
	if err != nil {
		return IndividualReceipt{}, err
	}

	amount, err := s.engine.PriceIndividual(string(ind.Accommodation), len(ind.DayPass))
	if err != nil {
		return IndividualReceipt{}, fmt.Errorf("price individual: %w", err)
	}

	id, err := s.newID()
	if err != nil {
		return IndividualReceipt{}, fmt.Errorf("generate id: %w", err)
	}

	rec := registration.IndividualRecord{
		ID:         id.String(),
		CreatedAt:  s.now().UTC(),
		Individual: ind,
	}
	if err := s.store.InsertIndividual(ctx, rec); err != nil {
		s.log.Error("failed to store individual registration", zap.String("id", rec.ID), zap.Error(err))
		return IndividualReceipt{}, ErrStore
	}

	s.log.Info("individual registration stored",
		zap.String("id", rec.ID),
		zap.String("accommodation", string(ind.Accommodation)),
		zap.String("payment", string(ind.Payment)),
	)
	return IndividualReceipt{ID: rec.ID, Amount: amount}, nil
}

// SubmitGroup prices the group from its member count and accommodation.
// Totals sent by the client are never consulted.
func (s *Service) SubmitGroup(ctx context.Context, in registration.GroupInput) (GroupReceipt, error) {
	g, err := registration.ParseGroup(in)
	if err != nil {
		return GroupReceipt{}, err
	}

	quote, err := s.engine.PriceGroup(len(g.Members), string(g.Accommodation))
	if err != nil {
		return GroupReceipt{}, fmt.Errorf("price group: %w", err)
	}

	id, err := s.newID()
	if err != nil {
		return GroupReceipt{}, fmt.Errorf("generate id: %w", err)
	}

	rec := registration.GroupRecord{
		ID:        id.String(),
		CreatedAt: s.now().UTC(),
		Group:     g,
		RawTotal:  quote.RawTotal,
		Discount:  quote.Discount,
		Total:     quote.Total,
	}
	if err := s.store.InsertGroup(ctx, rec); err != nil {
		s.log.Error("failed to store group registration", zap.String("id", rec.ID), zap.Error(err))
		return GroupReceipt{}, ErrStore
	}

	s.log.Info("group registration stored",
		zap.String("id", rec.ID),
		zap.Int("members", len(g.Members)),
		zap.Stringer("total", rec.Total),
	)
	return GroupReceipt{
		ID:       rec.ID,
		RawTotal: rec.RawTotal,
		Discount: rec.Discount,
		Total:    rec.Total,
	}, nil
}

func (s *Service) ListIndividuals(ctx context.Context) ([]registration.IndividualRecord, error) {
	recs, err := s.store.ListIndividuals(ctx)
	if err != nil {
		s.log.Error("failed to list individual registrations", zap.Error(err))
		return nil, ErrStore
	}
	return recs, nil
}

func (s *Service) ListGroups(ctx context.Context) ([]registration.GroupRecord, error) {
	recs, err := s.store.ListGroups(ctx)
	if err != nil {
		s.log.Error("failed to list group registrations", zap.Error(err))
		return nil, ErrStore
	}
	return recs, nil
}
