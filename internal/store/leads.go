package store

import (
	"context"
	"sync"

	"github.com/AkkAshy/kursi-sub000/internal/models"
)

// LeadsAPI — срез API-поверхности, нужный стору лидов.
type LeadsAPI interface {
	Leads(ctx context.Context, status models.LeadStatus) ([]models.Lead, error)
	UpdateLeadStatus(ctx context.Context, id int64, status models.LeadStatus, comment string) (*models.Lead, error)
}

// Leads — кэш заявок из Telegram-бота.
type Leads struct {
	api LeadsAPI

	mu    sync.Mutex
	items []models.Lead
	err   error
	guard busyGuard
}

// NewLeads создаёт стор лидов.
func NewLeads(api LeadsAPI) *Leads {
	return &Leads{api: api}
}

// Fetch наполняет кэш всеми заявками.
func (s *Leads) Fetch(ctx context.Context) ([]models.Lead, error) {
	return s.fetch(ctx, "")
}

// FetchByStatus наполняет кэш заявками одной стадии.
func (s *Leads) FetchByStatus(ctx context.Context, status models.LeadStatus) ([]models.Lead, error) {
	return s.fetch(ctx, status)
}

func (s *Leads) fetch(ctx context.Context, status models.LeadStatus) ([]models.Lead, error) {
	items, err := s.api.Leads(ctx, status)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.err = err
		return nil, err
	}

	s.items = items
	s.err = nil

	return s.snapshot(), nil
}

// Items возвращает копию кэшированного списка.
func (s *Leads) Items() []models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// SetStatus переводит заявку в новую стадию и вливает результат в кэш.
func (s *Leads) SetStatus(ctx context.Context, id int64, status models.LeadStatus, comment string) (*models.Lead, error) {
	s.mu.Lock()
	if !s.guard.begin(id) {
		s.mu.Unlock()
		return nil, ErrActionInFlight
	}
	s.mu.Unlock()

	lead, err := s.api.UpdateLeadStatus(ctx, id, status, comment)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.guard.end(id)

	if err != nil {
		s.err = err
		return nil, err
	}

	for i := range s.items {
		if s.items[i].ID == lead.ID {
			s.items[i] = *lead
			break
		}
	}
	s.err = nil

	return lead, nil
}

// Err — последняя ошибка стора.
func (s *Leads) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// ClearErr сбрасывает сохранённую ошибку.
func (s *Leads) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = nil
}

func (s *Leads) snapshot() []models.Lead {
	out := make([]models.Lead, len(s.items))
	copy(out, s.items)

	return out
}
