package middleware

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/hazardwatch/internal/pkg/logger"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS("http://localhost:5173, https://hazards.example.org"))
	r.GET("/x", func(c *gin.Context) { c.Status(200) })

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Origin", "https://hazards.example.org")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "https://hazards.example.org", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest("OPTIONS", "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, 204, w.Code)
	require.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestCORS_Wildcard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS("*"))
	r.GET("/x", func(c *gin.Context) { c.Status(200) })

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "https://anywhere.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHideSensitiveFields(t *testing.T) {
	in := map[string]interface{}{
		"username": "admin",
		"password": "admin123",
		"photoUrl": "data:image/png;base64,AAAA",
		"nested":   []interface{}{map[string]interface{}{"token": "abc"}},
	}
	out := hideSensitiveFields(in).(map[string]interface{})

	require.Equal(t, "admin", out["username"])
	require.Equal(t, "********", out["password"])
	require.Equal(t, "[inline data, 26B]", out["photoUrl"])
	nested := out["nested"].([]interface{})[0].(map[string]interface{})
	require.Equal(t, "********", nested["token"])
}

func TestSkipped(t *testing.T) {
	cfg := DefaultLoggerConfig()
	require.True(t, skipped(cfg, "/health"))
	require.True(t, skipped(cfg, "/swagger/index.html"))
	require.True(t, skipped(cfg, "/api/v1/ws/reports"))
	require.False(t, skipped(cfg, "/api/v1/reports"))
}

func TestLoggerWritesOneLinePerRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	r := gin.New()
	r.Use(Logger(logger.NewWithWriter(logger.DEBUG, &buf)))
	r.POST("/api/v1/admin/reports", func(c *gin.Context) {
		c.Set("username", "admin")
		c.JSON(422, gin.H{"error": "Validation failed"})
	})
	r.GET("/health", func(c *gin.Context) { c.Status(200) })

	req := httptest.NewRequest("POST", "/api/v1/admin/reports?x=1", strings.NewReader(`{"title":"t","password":"admin123"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, "[WARN] POST /api/v1/admin/reports?x=1 422")
	require.Contains(t, out, "admin=admin")
	require.Contains(t, out, "Validation failed")
	require.Contains(t, out, `"password":"********"`)
	require.NotContains(t, out, "admin123")

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))
	require.Empty(t, buf.String())
}
