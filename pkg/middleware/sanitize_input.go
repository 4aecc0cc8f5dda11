package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"gymfit/pkg/utils"
)

// SanitizeInputMiddleware strips markup from top-level string fields of JSON
// request bodies. Fields whose name contains "password" are left untouched.
func SanitizeInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}
		if !strings.HasPrefix(c.ContentType(), "application/json") || c.Request.Body == nil {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid body")
			c.Abort()
			return
		}
		if len(bytes.TrimSpace(buf)) == 0 {
			c.Request.Body = io.NopCloser(bytes.NewReader(buf))
			c.Next()
			return
		}

		var body map[string]json.RawMessage
		if err := json.Unmarshal(buf, &body); err != nil {
			// Not an object: leave it for the handler's binding to reject.
			c.Request.Body = io.NopCloser(bytes.NewReader(buf))
			c.Next()
			return
		}

		for k, raw := range body {
			if strings.Contains(strings.ToLower(k), "password") {
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				continue
			}
			cleaned, _ := json.Marshal(sanitizeText(policy, s))
			body[k] = cleaned
		}

		newBody, _ := json.Marshal(body)
		c.Request.Body = io.NopCloser(bytes.NewReader(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

// bluemonday escapes quotes and ampersands it keeps; plain text wants them back.
var htmlUnescaper = strings.NewReplacer("&amp;", "&", "&#39;", "'", "&#34;", "\"")

func sanitizeText(policy *bluemonday.Policy, s string) string {
	return htmlUnescaper.Replace(policy.Sanitize(s))
}
