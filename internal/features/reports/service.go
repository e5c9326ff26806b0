package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xyz-asif/hazardwatch/internal/pkg/logger"
	"github.com/xyz-asif/hazardwatch/pkg/errors"
)

// Service ties the store to the engines and side effects (change feed,
// photo forwarding, simulated latency).
type Service struct {
	store   *Store
	hub     *Hub
	photos  PhotoUploader
	log     *logger.Logger
	now     func() time.Time
	latency time.Duration
}

type ServiceOption func(*Service)

func WithHub(h *Hub) ServiceOption { return func(s *Service) { s.hub = h } }

func WithPhotoUploader(p PhotoUploader) ServiceOption { return func(s *Service) { s.photos = p } }

func WithServiceClock(now func() time.Time) ServiceOption { return func(s *Service) { s.now = now } }

// WithLatency delays Create to mimic a network round trip.
func WithLatency(d time.Duration) ServiceOption { return func(s *Service) { s.latency = d } }

func NewService(store *Store, log *logger.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		store: store,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Store() *Store { return s.store }

// List filters the full snapshot.
func (s *Service) List(f Filter) ListResponse {
	all := s.store.All()
	matched := Apply(all, f, s.now())
	return ListResponse{
		Reports:       matched,
		Count:         len(matched),
		Total:         len(all),
		FiltersActive: f.Active(),
	}
}

func (s *Service) Markers(f Filter) []Marker {
	return MapMarkers(Apply(s.store.All(), f, s.now()))
}

func (s *Service) Dashboard() Dashboard {
	return BuildDashboard(s.store.All(), s.now())
}

func (s *Service) Stats() StatusCounts {
	return CountByStatus(s.store.All())
}

func (s *Service) Get(id string) (Report, error) {
	r, ok := s.store.Get(id)
	if !ok {
		return Report{}, fmt.Errorf("report %q: %w", id, errors.ErrNotFound)
	}
	return r, nil
}

// Create validates the form, forwards an inline photo when an uploader is
// configured, and inserts the report at the top of the store.
func (s *Service) Create(ctx context.Context, req *CreateReportRequest) (Report, error) {
	if err := ValidateCreateReport(req); err != nil {
		return Report{}, err
	}

	if s.latency > 0 {
		select {
		case <-ctx.Done():
			return Report{}, ctx.Err()
		case <-time.After(s.latency):
		}
	}

	now := s.now()
	createdAt := now
	if req.Date != "" || req.Time != "" {
		t, err := parseFormTime(req.Date, req.Time, now)
		if err != nil {
			return Report{}, fmt.Errorf("parse report time: %w", errors.ErrValidation)
		}
		createdAt = t
	}

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	photo := Photo{URL: req.PhotoURL}
	if s.photos != nil && isDataURI(photo.URL) {
		hosted, err := s.photos.UploadPhoto(ctx, photo.URL)
		if err != nil {
			s.log.Warn("photo upload failed, keeping inline data: %v", err)
		} else {
			photo = hosted
		}
	}

	report := Report{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
		Status:      status,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Township:    req.Township,
		PhotoURL:    photo.URL,
		PhotoID:     photo.PublicID,
		CreatedAt:   createdAt,
		UpdatedAt:   now,
	}

	if err := s.store.Insert(report); err != nil {
		return Report{}, err
	}
	// Insert may have raised updatedAt to createdAt for future-dated reports.
	report, _ = s.store.Get(report.ID)

	s.log.Info("report %s created in %s (%s)", report.ID, report.Township, report.Category)
	s.publish(EventCreated, report)
	return report, nil
}

// SetStatus applies a status transition. Unknown ids surface as ErrNotFound
// at this layer so handlers can answer 404.
func (s *Service) SetStatus(id string, status Status) (Report, error) {
	if !status.Valid() {
		return Report{}, fmt.Errorf("status %q: %w", status, errors.ErrValidation)
	}
	r, ok := SetStatus(s.store, id, status)
	if !ok {
		return Report{}, fmt.Errorf("report %q: %w", id, errors.ErrNotFound)
	}
	s.log.Info("report %s status set to %s", id, status)
	s.publish(EventUpdated, r)
	return r, nil
}

// Delete removes the report and, best effort, its hosted photo.
func (s *Service) Delete(ctx context.Context, id string) error {
	r, ok := s.store.Get(id)
	if !ok || !s.store.RemoveByID(id) {
		return fmt.Errorf("report %q: %w", id, errors.ErrNotFound)
	}
	s.log.Info("report %s deleted", id)
	s.publish(EventDeleted, r)

	if s.photos != nil && r.PhotoID != "" {
		if err := s.photos.DeletePhoto(ctx, r.PhotoID); err != nil {
			s.log.Warn("photo %s for deleted report %s not removed: %v", r.PhotoID, id, err)
		}
	}
	return nil
}

func (s *Service) publish(t EventType, r Report) {
	if s.hub != nil {
		s.hub.Publish(Event{Type: t, Report: r})
	}
}
