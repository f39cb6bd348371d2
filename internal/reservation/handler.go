package reservation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Eyobiel-12/savannaeetcafe/internal/i18n"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/reservations/availability?date=YYYY-MM-DD
// --------------------------------------------------
func (h *Handler) Availability(c *gin.Context) {
	a, err := h.service.Availability(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, a)
}

// --------------------------------------------------
// GET /api/reservations/window
// --------------------------------------------------
func (h *Handler) Window(c *gin.Context) {
	w := h.service.Window()
	c.JSON(http.StatusOK, gin.H{
		"min": w.From.Format(DateLayout),
		"max": w.To.Format(DateLayout),
	})
}

// --------------------------------------------------
// POST /api/reservations/validate
// --------------------------------------------------
func (h *Handler) Validate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	errs := h.service.Validate(req, i18n.LocaleFrom(c))
	c.JSON(http.StatusOK, gin.H{
		"valid":  len(errs) == 0,
		"errors": errs,
	})
}

// --------------------------------------------------
// POST /api/reservations
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	locale := i18n.LocaleFrom(c)
	bundle := h.service.bundle

	confirmation, err := h.service.Submit(c.Request.Context(), req, locale)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  err.Error(),
				"errors": verr.Fields,
			})
		case errors.Is(err, ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{
				"error": bundle.T(locale, i18n.ReservationInFlight),
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error":       bundle.T(locale, i18n.ReservationDispatchFailed),
				"description": bundle.T(locale, i18n.ReservationDispatchFailedDescription),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, confirmation)
}
