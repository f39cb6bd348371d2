package restaurant

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	now     func() time.Time
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service, now: time.Now}
}

// --------------------------------------------------
// GET /api/restaurant
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"info":     h.service.Info(),
		"hours":    h.service.Hours(),
		"open_now": h.service.IsOpen(h.now()),
	})
}
