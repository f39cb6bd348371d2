package contact

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Eyobiel-12/savannaeetcafe/internal/i18n"
	"github.com/Eyobiel-12/savannaeetcafe/internal/reservation"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/contact
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var m Message
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	locale := i18n.LocaleFrom(c)
	bundle := h.service.bundle

	reference, err := h.service.Send(c.Request.Context(), m, locale)
	if err != nil {
		var verr *reservation.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Fields})
		case errors.Is(err, reservation.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": bundle.T(locale, i18n.ReservationInFlight)})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error":       bundle.T(locale, i18n.ReservationDispatchFailed),
				"description": bundle.T(locale, i18n.ReservationDispatchFailedDescription),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reference": reference,
		"message":   bundle.T(locale, i18n.ContactFormSuccess),
	})
}
