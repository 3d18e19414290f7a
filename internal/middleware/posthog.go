package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/freight_desk/internal/utils"
	"github.com/gin-gonic/gin"
)

// trackedQueryKeys are copied into event properties when present, so rate
// lookups can be broken down by pair and source.
var trackedQueryKeys = []string{"source", "from", "to", "from_currency", "to_currency", "type"}

// PosthogMiddleware records one analytics event per successful authenticated
// call, named after the matched route ("/api/v1/exchange-rates/convert" becomes
// "api_v1_exchange-rates_convert").
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		route := c.FullPath()
		if route == "" {
			return
		}

		props := requestProperties(c)
		props["status_code"] = c.Writer.Status()
		for _, key := range trackedQueryKeys {
			if v := c.Query(key); v != "" {
				props[key] = strings.ToUpper(v)
			}
		}

		PosthogEvent(c, posthogClient, strings.ReplaceAll(strings.TrimPrefix(route, "/"), "/", "_"), props)
	}
}

// PosthogEvent sends a named event for the authenticated user, such as an
// inquiry extraction failure. Anonymous requests are not tracked.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if posthogClient == nil || !posthogClient.IsInitialized() {
		return
	}
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}

	props := requestProperties(c)
	for k, v := range properties {
		props[k] = v
	}
	posthogClient.Enqueue(userID, eventName, props)
}

func requestProperties(c *gin.Context) map[string]any {
	props := map[string]any{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	}
	if id := c.Writer.Header().Get("X-Request-ID"); id != "" {
		props["request_id"] = id
	}
	if len(c.Params) > 0 {
		params := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}
		props["params"] = params
	}
	return props
}
