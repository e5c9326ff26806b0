package reports

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/xyz-asif/hazardwatch/pkg/errors"
)

// Store is the in-memory, most-recent-first report collection shared by
// every view. All mutation goes through its methods.
type Store struct {
	mu      sync.RWMutex
	reports []Report
	index   map[string]struct{}
	now     func() time.Time
}

type StoreOption func(*Store)

// WithClock overrides the timestamp source used for updatedAt.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		index: make(map[string]struct{}),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the collection with reports, keeping their order.
func (s *Store) Load(reports []Report) error {
	index := make(map[string]struct{}, len(reports))
	loaded := make([]Report, 0, len(reports))
	for _, r := range reports {
		if err := checkInsertable(r); err != nil {
			return err
		}
		if _, dup := index[r.ID]; dup {
			return fmt.Errorf("report %q: %w", r.ID, errors.ErrDuplicate)
		}
		index[r.ID] = struct{}{}
		loaded = append(loaded, normalizeTimestamps(r))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = loaded
	s.index = index
	return nil
}

// Insert adds report at the front of the collection.
func (s *Store) Insert(report Report) error {
	if err := checkInsertable(report); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.index[report.ID]; dup {
		return fmt.Errorf("report %q: %w", report.ID, errors.ErrDuplicate)
	}

	s.reports = append(s.reports, Report{})
	copy(s.reports[1:], s.reports)
	s.reports[0] = normalizeTimestamps(report)
	s.index[report.ID] = struct{}{}
	return nil
}

// UpdateByID merges patch into the matching report and refreshes updatedAt.
// It returns false when no report has that id.
func (s *Store) UpdateByID(id string, patch Patch) (Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.position(id)
	if i < 0 {
		return Report{}, false
	}

	r := s.reports[i]
	if patch.Title != nil {
		r.Title = *patch.Title
	}
	if patch.Description != nil {
		r.Description = *patch.Description
	}
	if patch.Category != nil {
		r.Category = *patch.Category
	}
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	if patch.Latitude != nil {
		r.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		r.Longitude = *patch.Longitude
	}
	if patch.Township != nil {
		r.Township = *patch.Township
	}
	if patch.PhotoURL != nil {
		r.PhotoURL = *patch.PhotoURL
	}

	// updatedAt never moves backwards, even if the clock does.
	stamp := s.now()
	if stamp.Before(r.UpdatedAt) {
		stamp = r.UpdatedAt
	}
	r.UpdatedAt = stamp

	s.reports[i] = r
	return r, true
}

// RemoveByID deletes the matching report. It returns false when absent.
func (s *Store) RemoveByID(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.position(id)
	if i < 0 {
		return false
	}
	s.reports = append(s.reports[:i], s.reports[i+1:]...)
	delete(s.index, id)
	return true
}

// Get returns the report with id.
func (s *Store) Get(id string) (Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.position(id)
	if i < 0 {
		return Report{}, false
	}
	return s.reports[i], true
}

// All returns an ordered snapshot. The caller owns the returned slice.
func (s *Store) All() []Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Report, len(s.reports))
	copy(out, s.reports)
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}

// position returns the index of id or -1. Caller holds the lock.
func (s *Store) position(id string) int {
	if _, ok := s.index[id]; !ok {
		return -1
	}
	for i := range s.reports {
		if s.reports[i].ID == id {
			return i
		}
	}
	return -1
}

func checkInsertable(r Report) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("report id is empty: %w", errors.ErrValidation)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("report %q has no title: %w", r.ID, errors.ErrValidation)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("report %q has unknown status %q: %w", r.ID, r.Status, errors.ErrValidation)
	}
	if !r.Category.Valid() {
		return fmt.Errorf("report %q has unknown category %q: %w", r.ID, r.Category, errors.ErrValidation)
	}
	return nil
}

func normalizeTimestamps(r Report) Report {
	if r.UpdatedAt.Before(r.CreatedAt) {
		r.UpdatedAt = r.CreatedAt
	}
	return r
}
