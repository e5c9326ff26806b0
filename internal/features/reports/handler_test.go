package reports

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, _ := newTestService(t)
	r := gin.New()
	api := r.Group("/api/v1")
	RegisterRoutes(api, api.Group("/admin"), svc, nil)
	return r, svc
}

func doJSON(r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestHandler_Meta(t *testing.T) {
	r, _ := newTestRouter(t)
	w, body := doJSON(r, "GET", "/api/v1/meta", nil)
	require.Equal(t, 200, w.Code)

	data := body["data"].(map[string]any)
	require.Len(t, data["categories"], len(Categories))
	require.Len(t, data["statuses"], 3)
	require.Len(t, data["townships"], len(Townships))
}

func TestHandler_ListFilters(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(r, "GET", "/api/v1/reports?status=verified", nil)
	require.Equal(t, 200, w.Code)
	data := body["data"].(map[string]any)
	require.Equal(t, float64(1), data["count"])
	require.Equal(t, float64(3), data["total"])
	require.Equal(t, true, data["filtersActive"])

	w, body = doJSON(r, "GET", "/api/v1/reports?timeRange=7days&search=DAGON", nil)
	require.Equal(t, 200, w.Code)
	data = body["data"].(map[string]any)
	require.Equal(t, float64(1), data["count"])
}

func TestHandler_ListRejectsBadTimeRange(t *testing.T) {
	r, _ := newTestRouter(t)
	w, body := doJSON(r, "GET", "/api/v1/reports?timeRange=fortnight", nil)
	require.Equal(t, 400, w.Code)
	require.Equal(t, "INVALID_FILTER", body["code"])
}

func TestHandler_GetReport(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(r, "GET", "/api/v1/reports/a", nil)
	require.Equal(t, 200, w.Code)
	require.Equal(t, "a", body["data"].(map[string]any)["id"])

	w, body = doJSON(r, "GET", "/api/v1/reports/nope", nil)
	require.Equal(t, 404, w.Code)
	require.Equal(t, "REPORT_NOT_FOUND", body["code"])
}

func TestHandler_MarkersAndDashboard(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(r, "GET", "/api/v1/map/markers", nil)
	require.Equal(t, 200, w.Code)
	require.Len(t, body["data"], 2)

	w, body = doJSON(r, "GET", "/api/v1/dashboard", nil)
	require.Equal(t, 200, w.Code)
	data := body["data"].(map[string]any)
	require.Equal(t, float64(3), data["total"])
	require.Len(t, data["monthly"], TrendMonths)
}

func TestHandler_AdminListPaginates(t *testing.T) {
	r, _ := newTestRouter(t)

	w, body := doJSON(r, "GET", "/api/v1/admin/reports?limit=2&page=2", nil)
	require.Equal(t, 200, w.Code)
	require.Equal(t, "3", w.Header().Get("X-Total-Reports"))
	require.Equal(t, float64(3), body["total"])
	require.Equal(t, float64(2), body["pages"])
	require.Len(t, body["data"], 1)
	row := body["data"].([]any)[0].(map[string]any)
	require.Equal(t, "c", row["id"])
	require.Equal(t, []any{"verify", "delete"}, row["actions"])

	w, body = doJSON(r, "GET", "/api/v1/admin/reports?page=9", nil)
	require.Equal(t, 200, w.Code)
	require.Empty(t, body["data"])

	w, body = doJSON(r, "GET", "/api/v1/admin/reports?page=9223372036854775807&limit=20", nil)
	require.Equal(t, 200, w.Code)
	require.Empty(t, body["data"])
}

func TestHandler_CreateValidation(t *testing.T) {
	r, svc := newTestRouter(t)

	w, body := doJSON(r, "POST", "/api/v1/admin/reports", map[string]any{"title": ""})
	require.Equal(t, 422, w.Code)
	require.Equal(t, "VALIDATION_FAILED", body["code"])
	fields := body["fields"].(map[string]any)
	require.Equal(t, "Title is required", fields["title"])
	require.Equal(t, "Please click on the map to select a location", fields["location"])
	require.Equal(t, 3, svc.Store().Len())

	req := httptest.NewRequest("POST", "/api/v1/admin/reports", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, 400, rec.Code)
}

func TestHandler_Create(t *testing.T) {
	r, svc := newTestRouter(t)

	w, body := doJSON(r, "POST", "/api/v1/admin/reports", validRequest())
	require.Equal(t, 201, w.Code)
	data := body["data"].(map[string]any)
	require.Equal(t, "active", data["status"])
	require.Equal(t, data["id"], svc.Store().All()[0].ID)
}

func TestHandler_StatusActions(t *testing.T) {
	r, svc := newTestRouter(t)

	w, _ := doJSON(r, "POST", "/api/v1/admin/reports/a/verify", nil)
	require.Equal(t, 200, w.Code)
	got, _ := svc.Get("a")
	require.Equal(t, StatusVerified, got.Status)

	w, _ = doJSON(r, "POST", "/api/v1/admin/reports/a/archive", nil)
	require.Equal(t, 200, w.Code)
	got, _ = svc.Get("a")
	require.Equal(t, StatusArchived, got.Status)

	w, _ = doJSON(r, "PATCH", "/api/v1/admin/reports/a/status", UpdateStatusRequest{Status: StatusActive})
	require.Equal(t, 200, w.Code)
	got, _ = svc.Get("a")
	require.Equal(t, StatusActive, got.Status)

	w, _ = doJSON(r, "PATCH", "/api/v1/admin/reports/a/status", map[string]string{"status": "pending"})
	require.Equal(t, 422, w.Code)

	w, _ = doJSON(r, "POST", "/api/v1/admin/reports/missing/verify", nil)
	require.Equal(t, 404, w.Code)
}

func TestHandler_DeleteAndStats(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(r, "DELETE", "/api/v1/admin/reports/c", nil)
	require.Equal(t, 200, w.Code)

	w, _ = doJSON(r, "DELETE", "/api/v1/admin/reports/c", nil)
	require.Equal(t, 404, w.Code)

	w, body := doJSON(r, "GET", "/api/v1/admin/stats", nil)
	require.Equal(t, 200, w.Code)
	data := body["data"].(map[string]any)
	require.Equal(t, float64(2), data["total"])
	require.Equal(t, float64(0), data["archived"])
}
