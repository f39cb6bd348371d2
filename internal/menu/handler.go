package menu

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /api/menu?q=&dietary=&spice=&price=&category=
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	q, err := ParseQuery(c.Request.URL.Query())
	if err != nil {
		var ce *CriteriaError
		if errors.As(err, &ce) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
				"field": ce.Field,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// GET /api/menu/options
// --------------------------------------------------
func (h *Handler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, AllOptions())
}

// --------------------------------------------------
// GET /api/menu/featured
// --------------------------------------------------
func (h *Handler) Featured(c *gin.Context) {
	dishes, err := h.service.Featured(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dishes": dishes})
}

// --------------------------------------------------
// GET /api/menu/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	dish, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrDishNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}

	c.JSON(http.StatusOK, dish)
}
