package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/hazardwatch/internal/pkg/logger"
)

// Logger configuration
type LoggerConfig struct {
	LogRequestBody  bool
	LogResponseBody bool
	MaxBodySize     int64 // Max body size to log (in bytes)
	SkipPaths       []string
	SkipPrefixes    []string
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		LogRequestBody:  true,
		LogResponseBody: false, // Only for errors
		MaxBodySize:     2048,
		SkipPaths:       []string{"/health", "/api/v1/ws/reports"},
		SkipPrefixes:    []string{"/swagger/"},
	}
}

func Logger(log *logger.Logger) gin.HandlerFunc {
	return LoggerWithConfig(log, DefaultLoggerConfig())
}

// LoggerWithConfig writes one line per request. 4xx responses log at WARN and
// 5xx at ERROR along with the (truncated) response body. Request bodies are
// logged at DEBUG with credentials masked and inline photos summarised.
func LoggerWithConfig(log *logger.Logger, config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		if skipped(config, path) {
			c.Next()
			return
		}

		var requestBody string
		if config.LogRequestBody && c.Request.Body != nil && c.Request.ContentLength > 0 {
			if c.Request.ContentLength > config.MaxBodySize {
				requestBody = fmt.Sprintf("[%s body]", formatSize(c.Request.ContentLength))
			} else {
				bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, config.MaxBodySize))
				if err == nil {
					c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
					requestBody = sanitizeBody(string(bodyBytes), c.GetHeader("Content-Type"))
				}
			}
		}

		writer := &limitedResponseWriter{
			ResponseWriter: c.Writer,
			maxSize:        config.MaxBodySize,
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		line := fmt.Sprintf("%s %s %d %v %s ip=%s",
			c.Request.Method, requestPath(path, c.Request.URL.RawQuery), status,
			time.Since(start).Round(time.Microsecond), formatSize(writer.size), c.ClientIP())
		if username := c.GetString("username"); username != "" {
			line += " admin=" + username
		}

		if requestBody != "" {
			log.Debug("%s %s body: %s", c.Request.Method, path, requestBody)
		}

		var responseBody string
		if writer.body.Len() > 0 && (config.LogResponseBody || status >= 400) {
			responseBody = truncateString(writer.body.String(), 300)
		}

		switch {
		case status >= 500:
			log.Error("%s response=%s", line, responseBody)
		case status >= 400:
			log.Warn("%s response=%s", line, responseBody)
		case responseBody != "":
			log.Info("%s response=%s", line, responseBody)
		default:
			log.Info("%s", line)
		}
	}
}

// limitedResponseWriter keeps at most maxSize bytes of the response for logging.
type limitedResponseWriter struct {
	gin.ResponseWriter
	body    bytes.Buffer
	size    int64
	maxSize int64
}

func (w *limitedResponseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	if w.size+int64(len(b)) <= w.maxSize {
		w.body.Write(b[:n])
	}
	w.size += int64(n)
	return n, err
}

func skipped(config LoggerConfig, path string) bool {
	for _, p := range config.SkipPaths {
		if path == p {
			return true
		}
	}
	for _, p := range config.SkipPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func requestPath(path, query string) string {
	if query == "" {
		return path
	}
	return path + "?" + truncateString(query, 100)
}

func formatSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	} else if bytes < 1024*1024 {
		return fmt.Sprintf("%.1fKB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.1fMB", float64(bytes)/(1024*1024))
}

func sanitizeBody(body, contentType string) string {
	if len(body) == 0 {
		return ""
	}

	if strings.Contains(contentType, "application/json") {
		var jsonData interface{}
		if json.Unmarshal([]byte(body), &jsonData) == nil {
			if formatted, err := json.Marshal(hideSensitiveFields(jsonData)); err == nil {
				return truncateString(string(formatted), 1024)
			}
		}
	}

	return truncateString(body, 200)
}

// hideSensitiveFields masks credential-like keys and replaces data URIs with
// their size.
func hideSensitiveFields(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, value := range v {
			if isSensitiveField(strings.ToLower(key)) {
				result[key] = "********"
			} else if str, ok := value.(string); ok && strings.HasPrefix(str, "data:") {
				result[key] = fmt.Sprintf("[inline data, %s]", formatSize(int64(len(str))))
			} else {
				result[key] = hideSensitiveFields(value)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = hideSensitiveFields(item)
		}
		return result
	default:
		return v
	}
}

func isSensitiveField(field string) bool {
	sensitive := []string{"password", "token", "secret", "key", "auth", "credential"}
	for _, s := range sensitive {
		if strings.Contains(field, s) {
			return true
		}
	}
	return false
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
