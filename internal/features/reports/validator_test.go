package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/hazardwatch/pkg/errors"
)

func floatPtr(v float64) *float64 { return &v }

func validRequest() *CreateReportRequest {
	return &CreateReportRequest{
		Title:     "Broken street light",
		Category:  CategorySafety,
		Township:  "Bahan",
		Latitude:  floatPtr(16.8167),
		Longitude: floatPtr(96.1583),
	}
}

func TestValidateCreateReport_Valid(t *testing.T) {
	require.NoError(t, ValidateCreateReport(validRequest()))

	req := validRequest()
	req.Date = "2024-01-31"
	req.Time = "14:05"
	req.PhotoURL = "data:image/png;base64,iVBORw0KGgo="
	require.NoError(t, ValidateCreateReport(req))
}

func TestValidateCreateReport_ReportsEveryMissingField(t *testing.T) {
	err := ValidateCreateReport(&CreateReportRequest{Title: "  "})
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrValidation))

	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	require.Equal(t, FieldErrors{
		"title":    "Title is required",
		"category": "Category is required",
		"township": "Township is required",
		"location": "Please click on the map to select a location",
	}, fe)
	require.Equal(t,
		"Title is required; Category is required; Township is required; Please click on the map to select a location",
		fe.Error())
}

func TestValidateCreateReport_RejectsUnknownValues(t *testing.T) {
	req := validRequest()
	req.Category = "weather"
	req.Status = "pending"
	req.Township = "Atlantis"

	var fe FieldErrors
	require.True(t, errors.As(ValidateCreateReport(req), &fe))
	require.Contains(t, fe, "category")
	require.Contains(t, fe, "status")
	require.Contains(t, fe, "township")
}

func TestValidateCreateReport_BadDateAndPhoto(t *testing.T) {
	req := validRequest()
	req.Date = "31/01/2024"
	req.PhotoURL = "not a photo"

	var fe FieldErrors
	require.True(t, errors.As(ValidateCreateReport(req), &fe))
	require.Contains(t, fe, "date")
	require.Contains(t, fe, "photoUrl")
}

func TestValidateCreateReport_TitleLength(t *testing.T) {
	req := validRequest()
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	req.Title = string(long)

	var fe FieldErrors
	require.True(t, errors.As(ValidateCreateReport(req), &fe))
	require.Equal(t, "Title cannot exceed 200 characters", fe["title"])
}

func TestParseFormTime(t *testing.T) {
	loc := time.FixedZone("MMT", 6*3600+1800)
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, loc)

	got, err := parseFormTime("2024-01-31", "14:05", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 31, 14, 5, 0, 0, loc), got)

	got, err = parseFormTime("", "08:00", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 3, 15, 8, 0, 0, 0, loc), got)

	got, err = parseFormTime("2024-02-01", "", now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, loc), got)

	_, err = parseFormTime("2024-02-01", "2pm", now)
	require.Error(t, err)
}
