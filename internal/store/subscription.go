package store

import (
	"context"
	"sync"

	"github.com/AkkAshy/kursi-sub000/internal/models"
)

// SubscriptionAPI — срез API-поверхности, нужный стору подписки.
type SubscriptionAPI interface {
	Plans(ctx context.Context) ([]models.Plan, error)
	CurrentSubscription(ctx context.Context) (*models.Subscription, error)
	SubscriptionUsage(ctx context.Context) (*models.Usage, error)
	ChangePlan(ctx context.Context, planID int64) (*models.Subscription, error)
}

// Subscription — кэш тарифов, текущей подписки и потребления квот.
type Subscription struct {
	api SubscriptionAPI

	mu      sync.Mutex
	plans   []models.Plan
	current *models.Subscription
	usage   *models.Usage
	err     error
}

// NewSubscription создаёт стор подписки.
func NewSubscription(api SubscriptionAPI) *Subscription {
	return &Subscription{api: api}
}

// FetchPlans наполняет кэш тарифов.
func (s *Subscription) FetchPlans(ctx context.Context) ([]models.Plan, error) {
	plans, err := s.api.Plans(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.err = err
		return nil, err
	}

	s.plans = plans
	s.err = nil

	out := make([]models.Plan, len(plans))
	copy(out, plans)

	return out, nil
}

// FetchCurrent наполняет кэш текущей подписки.
func (s *Subscription) FetchCurrent(ctx context.Context) (*models.Subscription, error) {
	current, err := s.api.CurrentSubscription(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.err = err
		return nil, err
	}

	s.current = current
	s.err = nil

	return current, nil
}

// FetchUsage наполняет кэш потребления квот.
func (s *Subscription) FetchUsage(ctx context.Context) (*models.Usage, error) {
	usage, err := s.api.SubscriptionUsage(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.err = err
		return nil, err
	}

	s.usage = usage
	s.err = nil

	return usage, nil
}

// Change переводит школу на другой тариф; новая подписка замещает
// кэшированную. Кэш потребления при этом НЕ инвалидируется — вызывающий
// перечитывает его явно.
func (s *Subscription) Change(ctx context.Context, planID int64) (*models.Subscription, error) {
	current, err := s.api.ChangePlan(ctx, planID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.err = err
		return nil, err
	}

	s.current = current
	s.err = nil

	return current, nil
}

// Plans возвращает копию кэшированных тарифов.
func (s *Subscription) CachedPlans() []models.Plan {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Plan, len(s.plans))
	copy(out, s.plans)

	return out
}

// Current возвращает кэшированную подписку (nil, если ещё не загружена).
func (s *Subscription) Current() *models.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// Usage возвращает кэшированное потребление (nil, если ещё не загружено).
func (s *Subscription) Usage() *models.Usage {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.usage
}

// Err — последняя ошибка стора.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// ClearErr сбрасывает сохранённую ошибку.
func (s *Subscription) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = nil
}
