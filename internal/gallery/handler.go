package gallery

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	source Source
}

func NewHandler(source Source) *Handler {
	return &Handler{source: source}
}

// --------------------------------------------------
// GET /api/gallery?category=
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	images, err := h.source.ListImages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load gallery"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": Categories(images),
		"images":     ByCategory(images, c.Query("category")),
	})
}
