package reports

// Marker is the map projection of a report.
type Marker struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Township      string   `json:"township"`
	Category      Category `json:"category"`
	CategoryLabel string   `json:"categoryLabel"`
	Color         string   `json:"color"`
	Status        Status   `json:"status"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	PhotoURL      string   `json:"photoUrl,omitempty"`
}

// MapMarkers builds one marker per non-archived report. Archiving only hides
// a report from the map; tables and dashboards still count it.
func MapMarkers(reports []Report) []Marker {
	markers := make([]Marker, 0, len(reports))
	for _, r := range reports {
		if r.Status == StatusArchived {
			continue
		}
		markers = append(markers, Marker{
			ID:            r.ID,
			Title:         r.Title,
			Township:      r.Township,
			Category:      r.Category,
			CategoryLabel: r.Category.Label(),
			Color:         r.Category.Color(),
			Status:        r.Status,
			Latitude:      r.Latitude,
			Longitude:     r.Longitude,
			PhotoURL:      r.PhotoURL,
		})
	}
	return markers
}
