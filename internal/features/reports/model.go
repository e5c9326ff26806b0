package reports

import "time"

// Category classifies the hazard type.
type Category string

const (
	CategoryInfrastructure Category = "infrastructure"
	CategoryEnvironmental  Category = "environmental"
	CategorySafety         Category = "safety"
	CategoryHealth         Category = "health"
	CategoryTraffic        Category = "traffic"
	CategoryOther          Category = "other"
)

// Categories lists every category in declaration order. Dashboards and
// legends iterate this slice, never a map.
var Categories = []Category{
	CategoryInfrastructure,
	CategoryEnvironmental,
	CategorySafety,
	CategoryHealth,
	CategoryTraffic,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryInfrastructure: "Infrastructure",
	CategoryEnvironmental:  "Environmental",
	CategorySafety:         "Safety Concern",
	CategoryHealth:         "Health Hazard",
	CategoryTraffic:        "Traffic Issue",
	CategoryOther:          "Other",
}

var categoryColors = map[Category]string{
	CategoryInfrastructure: "hsl(var(--chart-1))",
	CategoryEnvironmental:  "hsl(var(--chart-2))",
	CategorySafety:         "hsl(var(--destructive))",
	CategoryHealth:         "hsl(var(--chart-4))",
	CategoryTraffic:        "hsl(var(--chart-5))",
	CategoryOther:          "hsl(var(--muted))",
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display label, or the raw value for unknown categories.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Color returns the chart/marker color token for the category.
func (c Category) Color() string {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return categoryColors[CategoryOther]
}

// Status is the lifecycle stage of a report.
type Status string

const (
	StatusActive   Status = "active"
	StatusVerified Status = "verified"
	StatusArchived Status = "archived"
)

var Statuses = []Status{StatusActive, StatusVerified, StatusArchived}

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusVerified, StatusArchived:
		return true
	}
	return false
}

// Report is a single hazard observation.
// @Description Hazard report with location, category and status
type Report struct {
	ID          string    `json:"id" example:"report-1"`
	Title       string    `json:"title" example:"Pothole on main road"`
	Description string    `json:"description" example:"Deep pothole near the market entrance"`
	Category    Category  `json:"category" example:"infrastructure" enums:"infrastructure,environmental,safety,health,traffic,other"`
	Status      Status    `json:"status" example:"active" enums:"active,verified,archived"`
	Latitude    float64   `json:"latitude" example:"16.8281"`
	Longitude   float64   `json:"longitude" example:"96.1735"`
	Township    string    `json:"township" example:"Dagon"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	// PhotoID is the hosting provider's id for PhotoURL, if it was uploaded.
	PhotoID     string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt" example:"2024-01-01T00:00:00Z"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2024-01-01T00:00:00Z"`
}

// Patch carries the fields UpdateByID may change. Nil fields are left as-is.
type Patch struct {
	Title       *string
	Description *string
	Category    *Category
	Status      *Status
	Latitude    *float64
	Longitude   *float64
	Township    *string
	PhotoURL    *string
}

// CreateReportRequest is the add-report form payload.
// @Description Data required to create a new report
type CreateReportRequest struct {
	Title       string   `json:"title" example:"Broken street light"`
	Description string   `json:"description" example:"Dark corner after 7pm"`
	Category    Category `json:"category" example:"safety"`
	Status      Status   `json:"status" example:"active"`
	Township    string   `json:"township" example:"Bahan"`
	Latitude    *float64 `json:"latitude" example:"16.8167"`
	Longitude   *float64 `json:"longitude" example:"96.1583"`
	// Date and Time come from the form's date/time pickers ("2024-01-31", "14:05").
	Date     string `json:"date,omitempty" example:"2024-01-31"`
	Time     string `json:"time,omitempty" example:"14:05"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// UpdateStatusRequest changes a report's status.
type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required" example:"verified" enums:"active,verified,archived"`
}

// ListResponse is returned by the report listing endpoints.
type ListResponse struct {
	Reports       []Report `json:"reports"`
	Count         int      `json:"count"`
	Total         int      `json:"total"`
	FiltersActive bool     `json:"filtersActive"`
}

// CategoryInfo describes one category for filters, forms and legends.
type CategoryInfo struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
	Color string   `json:"color"`
}

// MetaResponse carries the enumerations a client needs to render forms.
type MetaResponse struct {
	Categories []CategoryInfo `json:"categories"`
	Statuses   []Status       `json:"statuses"`
	Townships  []Township     `json:"townships"`
	Bounds     Bounds         `json:"bounds"`
	Center     LatLng         `json:"center"`
}
