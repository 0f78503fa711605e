package middleware

import (
	"github.com/SscSPs/uk_books_app/internal/localization"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const localeKey = contextKey("locale")

// LocaleMiddleware picks the response locale from Accept-Language and echoes it in Content-Language.
// Requests without the header get fallback.
func LocaleMiddleware(catalog *localization.Catalog, fallback language.Tag) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := fallback
		if header := c.GetHeader("Accept-Language"); header != "" {
			tag = catalog.Match(header)
		}
		c.Set(string(localeKey), tag.String())
		c.Header("Content-Language", tag.String())
		c.Next()
	}
}

// GetLocaleFromContext returns the locale code chosen by LocaleMiddleware, "en" when it did not run.
func GetLocaleFromContext(c *gin.Context) string {
	if locale := c.GetString(string(localeKey)); locale != "" {
		return locale
	}
	return localization.LocaleEnglish
}
