package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/xyz-asif/hazardwatch/internal/pkg/validator"
	"github.com/xyz-asif/hazardwatch/pkg/errors"
)

// FieldErrors maps a form field to its message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, field := range []string{"title", "category", "status", "township", "location", "date", "photoUrl"} {
		if msg, ok := fe[field]; ok {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, "; ")
}

func (fe FieldErrors) Unwrap() error { return errors.ErrValidation }

// ValidateCreateReport checks the add-report form and returns every problem
// at once, or nil.
func ValidateCreateReport(req *CreateReportRequest) error {
	fe := FieldErrors{}

	if validator.IsBlank(req.Title) {
		fe["title"] = "Title is required"
	} else if len(strings.TrimSpace(req.Title)) > 200 {
		fe["title"] = "Title cannot exceed 200 characters"
	}

	if req.Category == "" {
		fe["category"] = "Category is required"
	} else if !req.Category.Valid() {
		fe["category"] = fmt.Sprintf("Unknown category %q", req.Category)
	}

	if req.Status != "" && !req.Status.Valid() {
		fe["status"] = fmt.Sprintf("Unknown status %q", req.Status)
	}

	if validator.IsBlank(req.Township) {
		fe["township"] = "Township is required"
	} else if _, ok := LookupTownship(req.Township); !ok {
		fe["township"] = fmt.Sprintf("Unknown township %q", req.Township)
	}

	if req.Latitude == nil || req.Longitude == nil {
		fe["location"] = "Please click on the map to select a location"
	}

	if req.Date != "" || req.Time != "" {
		if _, err := parseFormTime(req.Date, req.Time, time.Now().UTC()); err != nil {
			fe["date"] = "Date and time must look like 2024-01-31 and 14:05"
		}
	}

	if req.PhotoURL != "" && !validator.IsImageDataURI(req.PhotoURL) && !validator.IsValidURL(req.PhotoURL) {
		fe["photoUrl"] = "Photo must be an image data URI or an http(s) URL"
	}

	if len(fe) > 0 {
		return fe
	}
	return nil
}

// parseFormTime combines the form's date and time pickers in now's location.
// A missing date means today, a missing time means midnight.
func parseFormTime(date, clock string, now time.Time) (time.Time, error) {
	loc := now.Location()
	if date == "" {
		date = now.Format("2006-01-02")
	}
	if clock == "" {
		clock = "00:00"
	}
	return time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
}
