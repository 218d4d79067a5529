package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeInput strips HTML from top-level string fields of JSON bodies.
func SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}

		var body map[string]interface{}
		dec := json.NewDecoder(bytes.NewReader(buf))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON", "message": err.Error()})
			return
		}

		for k, v := range body {
			if str, ok := v.(string); ok {
				body[k] = StripTags(str)
			}
		}

		newBody, err := json.Marshal(body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON", "message": err.Error()})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}

// bluemonday escapes text on output; only the forms that can never rebuild a
// tag are decoded again, so "Tom & Jerry" is stored as typed.
var textEntities = strings.NewReplacer("&amp;", "&", "&#34;", `"`, "&#39;", "'", "&#13;", "\r")

// StripTags decodes entities before sanitising, so "&lt;b&gt;" is removed the
// same as "<b>". The result never contains a literal '<' or '>'.
func StripTags(s string) string {
	return textEntities.Replace(strictPolicy.Sanitize(html.UnescapeString(s)))
}
