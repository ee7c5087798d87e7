package memory

import (
	"errors"
	"fmt"
	"sync"

	"knapsack/internal/domain"
)

var _ domain.ReportStore = (*Storage)(nil)

// Storage is an in-memory report store bounded to the most recent limit reports.
type Storage struct {
	mu      sync.RWMutex
	limit   int
	reports []domain.Report
}

// NewStorage creates a store keeping at most limit reports; limit <= 0 keeps all.
func NewStorage(limit int) *Storage { return &Storage{limit: limit} }

func (s *Storage) Add(report domain.Report) error {
	if report.ID == "" {
		return errors.New("report without id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reports {
		if s.reports[i].ID == report.ID {
			s.reports[i] = report
			return nil
		}
	}
	s.reports = append(s.reports, report)
	if s.limit > 0 && len(s.reports) > s.limit {
		s.reports = append([]domain.Report(nil), s.reports[len(s.reports)-s.limit:]...)
	}
	return nil
}

func (s *Storage) Get(id string) (domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Report{}, fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
}

func (s *Storage) List() ([]domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Report, len(s.reports))
	copy(out, s.reports)
	return out, nil
}

func (s *Storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = nil
	return nil
}
