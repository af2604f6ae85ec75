package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/castillotomupwork/task/internal/constants"
	"github.com/castillotomupwork/task/internal/i18n"
)

// Locale negotiates the request language from the Accept-Language header once
// per request and stores the resulting translator in the context. There is no
// process-wide current language; every request carries its own.
func Locale(bundle *i18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		tr := bundle.Translator(c.GetHeader("Accept-Language"))
		c.Set(constants.ContextKeyTranslator, tr)
		c.Next()
	}
}

// GetTranslator retrieves the request translator from context. When the
// middleware did not run (direct handler calls in tests) it falls back to a
// translator that echoes message IDs.
func GetTranslator(c *gin.Context) i18n.Translator {
	if v, exists := c.Get(constants.ContextKeyTranslator); exists {
		if tr, ok := v.(i18n.Translator); ok {
			return tr
		}
	}

	return func(messageID string, _ map[string]any) string {
		return messageID
	}
}
