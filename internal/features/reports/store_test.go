package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/hazardwatch/pkg/errors"
)

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newReport(id string, status Status, category Category, township string, age time.Duration) Report {
	created := testNow.Add(-age)
	return Report{
		ID:        id,
		Title:     "Report " + id,
		Category:  category,
		Status:    status,
		Township:  township,
		Latitude:  16.8,
		Longitude: 96.15,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestStore_InsertPlacesNewestFirst(t *testing.T) {
	s := NewStore(WithClock(fixedClock(testNow)))
	require.NoError(t, s.Insert(newReport("a", StatusActive, CategorySafety, "Dagon", 0)))
	require.NoError(t, s.Insert(newReport("b", StatusActive, CategorySafety, "Dagon", 0)))

	all := s.All()
	require.Len(t, all, 2)
	require.Equal(t, "b", all[0].ID)
	require.Equal(t, "a", all[1].ID)
}

func TestStore_InsertRejectsDuplicateID(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Insert(newReport("a", StatusActive, CategorySafety, "Dagon", 0)))

	err := s.Insert(newReport("a", StatusVerified, CategoryHealth, "Bahan", 0))
	require.True(t, errors.Is(err, errors.ErrDuplicate))
	require.Equal(t, 1, s.Len())
}

func TestStore_InsertRejectsInvalidReports(t *testing.T) {
	s := NewStore()

	cases := map[string]Report{
		"empty id":         newReport("", StatusActive, CategorySafety, "Dagon", 0),
		"unknown status":   newReport("x", Status("pending"), CategorySafety, "Dagon", 0),
		"unknown category": newReport("y", StatusActive, Category("weather"), "Dagon", 0),
	}
	for name, r := range cases {
		t.Run(name, func(t *testing.T) {
			err := s.Insert(r)
			require.True(t, errors.Is(err, errors.ErrValidation))
		})
	}

	blank := newReport("z", StatusActive, CategorySafety, "Dagon", 0)
	blank.Title = "   "
	require.True(t, errors.Is(s.Insert(blank), errors.ErrValidation))
	require.Zero(t, s.Len())
}

func TestStore_UpdateByID(t *testing.T) {
	later := testNow.Add(time.Hour)
	s := NewStore(WithClock(fixedClock(later)))
	require.NoError(t, s.Insert(newReport("a", StatusActive, CategorySafety, "Dagon", 48*time.Hour)))

	title := "Renamed"
	updated, ok := s.UpdateByID("a", Patch{Title: &title})
	require.True(t, ok)
	require.Equal(t, "a", updated.ID)
	require.Equal(t, "Renamed", updated.Title)
	require.Equal(t, StatusActive, updated.Status)
	require.Equal(t, later, updated.UpdatedAt)

	got, ok := s.Get("a")
	require.True(t, ok)
	require.Equal(t, updated, got)
}

func TestStore_UpdatedAtNeverMovesBackwards(t *testing.T) {
	clock := testNow
	s := NewStore(WithClock(func() time.Time { return clock }))
	require.NoError(t, s.Insert(newReport("a", StatusActive, CategorySafety, "Dagon", 0)))

	status := StatusVerified
	first, ok := s.UpdateByID("a", Patch{Status: &status})
	require.True(t, ok)

	clock = testNow.Add(-time.Hour)
	second, ok := s.UpdateByID("a", Patch{Status: &status})
	require.True(t, ok)
	require.False(t, second.UpdatedAt.Before(first.UpdatedAt))
	require.False(t, second.UpdatedAt.Before(second.CreatedAt))
}

func TestStore_UpdateUnknownID(t *testing.T) {
	s := NewStore()
	status := StatusArchived
	_, ok := s.UpdateByID("missing", Patch{Status: &status})
	require.False(t, ok)
}

func TestStore_RemoveByID(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Load([]Report{
		newReport("a", StatusActive, CategorySafety, "Dagon", 0),
		newReport("b", StatusVerified, CategoryHealth, "Bahan", 0),
	}))

	require.True(t, s.RemoveByID("a"))
	require.False(t, s.RemoveByID("a"))
	require.Equal(t, 1, s.Len())

	_, ok := s.Get("a")
	require.False(t, ok)
	require.Equal(t, 1, CountByStatus(s.All()).Total)
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Insert(newReport("a", StatusActive, CategorySafety, "Dagon", 0)))

	snapshot := s.All()
	snapshot[0].Title = "mutated"

	got, _ := s.Get("a")
	require.Equal(t, "Report a", got.Title)
}

func TestStore_LoadKeepsOrderAndRejectsDuplicates(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Load([]Report{
		newReport("old", StatusActive, CategorySafety, "Dagon", 0),
		newReport("new", StatusActive, CategorySafety, "Dagon", 0),
	}))
	require.Equal(t, "old", s.All()[0].ID)

	err := s.Load([]Report{
		newReport("x", StatusActive, CategorySafety, "Dagon", 0),
		newReport("x", StatusActive, CategorySafety, "Dagon", 0),
	})
	require.True(t, errors.Is(err, errors.ErrDuplicate))
	require.Equal(t, 2, s.Len())
}

func TestStore_LoadNormalizesUpdatedAt(t *testing.T) {
	r := newReport("a", StatusActive, CategorySafety, "Dagon", 0)
	r.UpdatedAt = r.CreatedAt.Add(-time.Hour)

	s := NewStore()
	require.NoError(t, s.Load([]Report{r}))

	got, _ := s.Get("a")
	require.Equal(t, got.CreatedAt, got.UpdatedAt)
}
