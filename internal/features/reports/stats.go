package reports

import (
	"sort"
	"time"
)

// DashboardTownshipLimit is how many townships the public dashboard charts.
const DashboardTownshipLimit = 8

// TrendMonths is the length of the monthly trend window.
const TrendMonths = 3

type StatusCounts struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Verified int `json:"verified"`
	Archived int `json:"archived"`
}

type CategoryCount struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Color    string   `json:"color"`
	Count    int      `json:"count"`
	Percent  float64  `json:"percent"`
}

type TownshipCount struct {
	Township string `json:"township"`
	Count    int    `json:"count"`
}

type MonthCount struct {
	Name     string     `json:"name"`
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Reports  int        `json:"reports"`
	Verified int        `json:"verified"`
}

// Dashboard is the public dashboard summary.
type Dashboard struct {
	StatusCounts
	Townships    int             `json:"townships"`
	Categories   []CategoryCount `json:"categories"`
	TopTownships []TownshipCount `json:"topTownships"`
	Monthly      []MonthCount    `json:"monthly"`
}

// CountByStatus tallies reports per status. Active+Verified+Archived equals
// Total for any collection of valid reports.
func CountByStatus(reports []Report) StatusCounts {
	var c StatusCounts
	for _, r := range reports {
		c.Total++
		switch r.Status {
		case StatusActive:
			c.Active++
		case StatusVerified:
			c.Verified++
		case StatusArchived:
			c.Archived++
		}
	}
	return c
}

// CountByCategory returns one entry per category in declaration order.
func CountByCategory(reports []Report) []CategoryCount {
	counts := make(map[Category]int, len(Categories))
	for _, r := range reports {
		counts[r.Category]++
	}

	out := make([]CategoryCount, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, CategoryCount{
			Category: c,
			Label:    c.Label(),
			Color:    c.Color(),
			Count:    counts[c],
			Percent:  Percent(counts[c], len(reports)),
		})
	}
	return out
}

// CountByTownship groups by exact township name, most reports first. Ties
// keep first-appearance order. limit <= 0 returns every township.
func CountByTownship(reports []Report, limit int) []TownshipCount {
	pos := make(map[string]int)
	out := make([]TownshipCount, 0)
	for _, r := range reports {
		i, ok := pos[r.Township]
		if !ok {
			i = len(out)
			pos[r.Township] = i
			out = append(out, TownshipCount{Township: r.Township})
		}
		out[i].Count++
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Count > out[b].Count
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DistinctTownships counts the townships that have at least one report.
func DistinctTownships(reports []Report) int {
	seen := make(map[string]struct{})
	for _, r := range reports {
		seen[r.Township] = struct{}{}
	}
	return len(seen)
}

// MonthlyTrend counts reports per calendar month for the current month and
// the two before it, oldest first. Months are evaluated in now's location
// and always present, even when empty.
func MonthlyTrend(reports []Report, now time.Time) []MonthCount {
	loc := now.Location()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

	out := make([]MonthCount, TrendMonths)
	for i := range out {
		m := first.AddDate(0, i-(TrendMonths-1), 0)
		out[i] = MonthCount{
			Name:  m.Format("Jan"),
			Year:  m.Year(),
			Month: m.Month(),
		}
	}

	for _, r := range reports {
		created := r.CreatedAt.In(loc)
		for i := range out {
			if created.Year() == out[i].Year && created.Month() == out[i].Month {
				out[i].Reports++
				if r.Status == StatusVerified {
					out[i].Verified++
				}
				break
			}
		}
	}
	return out
}

// Percent returns part/total*100, or 0 when total is 0.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}

// BuildDashboard computes every public dashboard figure from one snapshot.
func BuildDashboard(reports []Report, now time.Time) Dashboard {
	return Dashboard{
		StatusCounts: CountByStatus(reports),
		Townships:    DistinctTownships(reports),
		Categories:   CountByCategory(reports),
		TopTownships: CountByTownship(reports, DashboardTownshipLimit),
		Monthly:      MonthlyTrend(reports, now),
	}
}
