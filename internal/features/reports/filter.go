package reports

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// All is the sentinel that disables the status and category predicates.
const All = "all"

// Filter selects reports. Every active predicate must hold.
type Filter struct {
	Search   string
	Status   string
	Category string
	// TimeRangeDays keeps reports at most this many whole days old. 0 disables it.
	TimeRangeDays int
}

// Active reports whether any predicate is switched on.
func (f Filter) Active() bool {
	return f.Search != "" ||
		enabled(f.Status) ||
		enabled(f.Category) ||
		f.TimeRangeDays > 0
}

// Match evaluates f against a single report. Search text is matched as typed,
// whitespace included.
func (f Filter) Match(r Report, now time.Time) bool {
	if q := strings.ToLower(f.Search); q != "" {
		if !strings.Contains(strings.ToLower(r.Title), q) &&
			!strings.Contains(strings.ToLower(r.Township), q) &&
			!strings.Contains(strings.ToLower(r.Description), q) {
			return false
		}
	}

	if enabled(f.Status) && string(r.Status) != f.Status {
		return false
	}

	if enabled(f.Category) && string(r.Category) != f.Category {
		return false
	}

	if f.TimeRangeDays > 0 && AgeInDays(r, now) > f.TimeRangeDays {
		return false
	}

	return true
}

// Apply returns the reports matching f in their original order. The result
// is never nil.
func Apply(reports []Report, f Filter, now time.Time) []Report {
	out := make([]Report, 0, len(reports))
	for _, r := range reports {
		if f.Match(r, now) {
			out = append(out, r)
		}
	}
	return out
}

// AgeInDays is the number of whole days between createdAt and now.
func AgeInDays(r Report, now time.Time) int {
	return int(now.Sub(r.CreatedAt) / (24 * time.Hour))
}

// ParseTimeRange accepts "all", "", "7days", "30days", "90days" or a bare
// positive day count.
func ParseTimeRange(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == All {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSuffix(s, "days"))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid time range %q", s)
	}
	return n, nil
}

func enabled(v string) bool {
	return v != "" && v != All
}
