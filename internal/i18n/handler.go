package i18n

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PreferenceCookie stores the language the visitor picked in the switcher.
const PreferenceCookie = "preferredLanguage"

type Handler struct {
	bundle *Bundle
}

func NewHandler(bundle *Bundle) *Handler {
	return &Handler{bundle: bundle}
}

// LocaleFrom resolves the request language from cookie and headers.
func LocaleFrom(c *gin.Context) Locale {
	preferred, _ := c.Cookie(PreferenceCookie)
	return Negotiate(preferred, c.GetHeader("Accept-Language"))
}

// --------------------------------------------------
// GET /api/i18n (negotiated)
// --------------------------------------------------
func (h *Handler) Current(c *gin.Context) {
	locale := LocaleFrom(c)
	table, _ := h.bundle.Table(locale)

	c.JSON(http.StatusOK, gin.H{
		"locale":    locale,
		"supported": Supported,
		"messages":  table,
	})
}

// --------------------------------------------------
// GET /api/i18n/:locale
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	locale, ok := ParseLocale(c.Param("locale"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unsupported locale"})
		return
	}

	table, _ := h.bundle.Table(locale)
	c.JSON(http.StatusOK, gin.H{
		"locale":   locale,
		"messages": table,
	})
}
