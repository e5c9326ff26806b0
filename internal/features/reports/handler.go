package reports

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/hazardwatch/internal/pkg/pagination"
	"github.com/xyz-asif/hazardwatch/internal/pkg/response"
	"github.com/xyz-asif/hazardwatch/pkg/errors"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func filterFromQuery(c *gin.Context) (Filter, error) {
	days, err := ParseTimeRange(c.Query("timeRange"))
	if err != nil {
		return Filter{}, err
	}
	return Filter{
		Search:        c.Query("search"),
		Status:        c.DefaultQuery("status", All),
		Category:      c.DefaultQuery("category", All),
		TimeRangeDays: days,
	}, nil
}

// Meta godoc
// @Summary Report enumerations
// @Description Categories with labels and colors, statuses, townships and map bounds
// @Tags reports
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=MetaResponse}
// @Router /meta [get]
func (h *Handler) Meta(c *gin.Context) {
	cats := make([]CategoryInfo, 0, len(Categories))
	for _, cat := range Categories {
		cats = append(cats, CategoryInfo{Value: cat, Label: cat.Label(), Color: cat.Color()})
	}
	response.Success(c, MetaResponse{
		Categories: cats,
		Statuses:   Statuses,
		Townships:  Townships,
		Bounds:     MapBounds,
		Center:     MapCenter,
	})
}

// List godoc
// @Summary List reports
// @Description Public report list filtered by search text, status, category and time range
// @Tags reports
// @Produce json
// @Param search query string false "Case-insensitive text matched against title, township and description"
// @Param status query string false "active, verified, archived or all"
// @Param category query string false "Category value or all"
// @Param timeRange query string false "7days, 30days, 90days or all"
// @Success 200 {object} response.SuccessResponse{data=ListResponse}
// @Failure 400 {object} response.ErrorResponse
// @Router /reports [get]
func (h *Handler) List(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILTER")
		return
	}
	response.Success(c, h.svc.List(f))
}

// Get godoc
// @Summary Get a report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse{data=Report}
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	r, err := h.svc.Get(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
		return
	}
	response.Success(c, r)
}

// Markers godoc
// @Summary Map markers
// @Description Markers for every non-archived report matching the filters
// @Tags map
// @Produce json
// @Param search query string false "Search text"
// @Param category query string false "Category value or all"
// @Param timeRange query string false "7days, 30days, 90days or all"
// @Success 200 {object} response.SuccessResponse{data=[]Marker}
// @Failure 400 {object} response.ErrorResponse
// @Router /map/markers [get]
func (h *Handler) Markers(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILTER")
		return
	}
	response.Success(c, h.svc.Markers(f))
}

// Dashboard godoc
// @Summary Public dashboard
// @Description Status, category, township and monthly aggregates over all reports
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=Dashboard}
// @Router /dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	response.Success(c, h.svc.Dashboard())
}

// AdminList godoc
// @Summary Admin report table
// @Description Filtered, paginated report list for triage
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search text"
// @Param status query string false "active, verified, archived or all"
// @Param category query string false "Category value or all"
// @Param timeRange query string false "7days, 30days, 90days or all"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} response.PaginatedResponse{data=[]AdminRow}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /admin/reports [get]
func (h *Handler) AdminList(c *gin.Context) {
	f, err := filterFromQuery(c)
	if err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILTER")
		return
	}

	list := h.svc.List(f)
	req := pagination.FromRequest(c.Query("page"), c.Query("limit"))
	p := pagination.New(req.Page, req.Limit, int64(list.Count))
	start, end := p.Bounds()

	c.Header("X-Total-Reports", strconv.Itoa(list.Total))
	response.Paginated(c, AdminRows(list.Reports[start:end]), p.Total, p.Limit, p.Page, p.Pages)
}

// AdminStats godoc
// @Summary Status counts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=StatusCounts}
// @Router /admin/stats [get]
func (h *Handler) AdminStats(c *gin.Context) {
	response.Success(c, h.svc.Stats())
}

// Create godoc
// @Summary Create a report
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReportRequest true "Report form"
// @Success 201 {object} response.SuccessResponse{data=Report}
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /admin/reports [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	r, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		var fe FieldErrors
		switch {
		case errors.As(err, &fe):
			response.ValidationFailed(c, "Invalid report", fe)
		case errors.Is(err, errors.ErrValidation):
			response.ValidationFailed(c, err.Error(), nil)
		case errors.Is(err, errors.ErrDuplicate):
			response.Conflict(c, "Report already exists", "DUPLICATE_REPORT")
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			response.Error(c, 499, "Request cancelled", "CANCELLED")
		default:
			response.InternalServerError(c, "Failed to create report", "INTERNAL_ERROR")
		}
		return
	}

	response.Created(c, r)
}

// UpdateStatus godoc
// @Summary Change a report's status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} response.SuccessResponse{data=Report}
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /admin/reports/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}
	h.applyStatus(c, req.Status)
}

// Verify godoc
// @Summary Verify a report
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse{data=Report}
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/reports/{id}/verify [post]
func (h *Handler) Verify(c *gin.Context) {
	h.applyStatus(c, StatusVerified)
}

// Archive godoc
// @Summary Archive a report
// @Description Archived reports leave the map but stay in tables and counts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse{data=Report}
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/reports/{id}/archive [post]
func (h *Handler) Archive(c *gin.Context) {
	h.applyStatus(c, StatusArchived)
}

func (h *Handler) applyStatus(c *gin.Context, status Status) {
	r, err := h.svc.SetStatus(c.Param("id"), status)
	if err != nil {
		if errors.Is(err, errors.ErrValidation) {
			response.ValidationFailed(c, "Unknown status", map[string]string{"status": "Status must be active, verified or archived"})
			return
		}
		response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
		return
	}
	response.Success(c, r)
}

// Delete godoc
// @Summary Delete a report
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/reports/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.NotFound(c, "Report not found", "REPORT_NOT_FOUND")
		return
	}
	response.Success(c, map[string]string{"message": "Report deleted"})
}
