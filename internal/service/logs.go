package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ecolog/carbon-tracker/internal/cache"
	"github.com/ecolog/carbon-tracker/internal/domain"
)

// LogService handles listing, adding and deleting activity logs. Reads go
// through the shared cache keyed by the exact filter; writes bypass it and
// invalidate everything afterwards.
type LogService struct {
	logs  domain.LogRepository
	cache *cache.Store
}

// NewLogService creates a new LogService.
func NewLogService(logs domain.LogRepository, store *cache.Store) *LogService {
	return &LogService{logs: logs, cache: store}
}

// List returns logs matching the filter, newest first.
func (s *LogService) List(ctx context.Context, filter domain.LogFilter) ([]domain.LogEntry, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	key := cache.Key("logs.list", filter.UserID, filter.From, filter.To)
	if v, ok := s.cache.Get(key); ok {
		return v.([]domain.LogEntry), nil
	}

	entries, err := s.logs.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	s.cache.Set(key, entries)
	return entries, nil
}

// Add inserts a single log row and returns its id. The emission value is
// computed by the database on insert, never here.
func (s *LogService) Add(ctx context.Context, log domain.NewLog) (int64, error) {
	if log.UserID <= 0 {
		return 0, fmt.Errorf("%w: a user must be selected", domain.ErrValidation)
	}
	if log.ActivityID <= 0 {
		return 0, fmt.Errorf("%w: an activity must be selected", domain.ErrValidation)
	}
	if log.Quantity < 0 {
		return 0, fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	if _, err := time.Parse(dateLayout, log.Date); err != nil {
		return 0, fmt.Errorf("%w: date %q must be YYYY-MM-DD", domain.ErrValidation, log.Date)
	}
	if log.LocationID != nil && *log.LocationID <= 0 {
		return 0, fmt.Errorf("%w: location id must be positive", domain.ErrValidation)
	}

	id, err := s.logs.Create(ctx, log)
	if err != nil {
		return 0, err
	}

	s.cache.Invalidate()
	return id, nil
}

// Delete removes a log by id and reports how many rows went away. Zero means
// the id did not exist, which is not an error.
func (s *LogService) Delete(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.logs.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.cache.Invalidate()
	}
	return deleted, nil
}

func validateFilter(filter domain.LogFilter) error {
	if filter.UserID != nil && *filter.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", domain.ErrValidation)
	}
	for _, bound := range []*string{filter.From, filter.To} {
		if bound == nil {
			continue
		}
		if _, err := time.Parse(dateLayout, *bound); err != nil {
			return fmt.Errorf("%w: date %q must be YYYY-MM-DD", domain.ErrValidation, *bound)
		}
	}
	return nil
}
