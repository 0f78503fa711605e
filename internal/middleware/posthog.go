package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/uk_books_app/internal/analytics"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked.
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// AnalyticsMiddleware records one event per successful authenticated API call.
// The event name is derived from the route template, e.g. "/api/v1/vat/summary" -> "api_v1_vat_summary".
func AnalyticsMiddleware(tracker analytics.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}
		tracker.Track(userID, eventName, props)
	}
}
