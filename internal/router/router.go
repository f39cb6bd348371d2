package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Eyobiel-12/savannaeetcafe/internal/contact"
	"github.com/Eyobiel-12/savannaeetcafe/internal/gallery"
	"github.com/Eyobiel-12/savannaeetcafe/internal/i18n"
	"github.com/Eyobiel-12/savannaeetcafe/internal/logger"
	"github.com/Eyobiel-12/savannaeetcafe/internal/menu"
	"github.com/Eyobiel-12/savannaeetcafe/internal/middleware"
	"github.com/Eyobiel-12/savannaeetcafe/internal/reservation"
	"github.com/Eyobiel-12/savannaeetcafe/internal/restaurant"
)

// Deps are the services the API serves.
type Deps struct {
	Log            zerolog.Logger
	AllowedOrigins []string

	Menu        *menu.Service
	Reservation *reservation.Service
	Contact     *contact.Service
	Gallery     gallery.Source
	Restaurant  *restaurant.Service
	I18n        *i18n.Bundle
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		logger.Middleware(d.Log),
		middleware.Recovery(d.Log),
	)

	if len(d.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// ───────────────────────── MENU ─────────────────────────
	if d.Menu != nil {
		h := menu.NewHandler(d.Menu)
		api.GET("/menu", h.List)
		api.GET("/menu/options", h.Options)
		api.GET("/menu/featured", h.Featured)
		api.GET("/menu/:id", h.Get)
	}

	// ───────────────────────── RESERVATIONS ─────────────────────────
	if d.Reservation != nil {
		h := reservation.NewHandler(d.Reservation)
		reservations := api.Group("/reservations")
		{
			reservations.GET("/availability", h.Availability)
			reservations.GET("/window", h.Window)
			reservations.POST("/validate", h.Validate)
			reservations.POST("", h.Create)
		}
	}

	// ───────────────────────── CONTACT ─────────────────────────
	if d.Contact != nil {
		api.POST("/contact", contact.NewHandler(d.Contact).Create)
	}

	// ───────────────────────── GALLERY ─────────────────────────
	if d.Gallery != nil {
		api.GET("/gallery", gallery.NewHandler(d.Gallery).List)
	}

	// ───────────────────────── RESTAURANT ─────────────────────────
	if d.Restaurant != nil {
		api.GET("/restaurant", restaurant.NewHandler(d.Restaurant).Get)
	}

	// ───────────────────────── I18N ─────────────────────────
	if d.I18n != nil {
		h := i18n.NewHandler(d.I18n)
		api.GET("/i18n", h.Current)
		api.GET("/i18n/:locale", h.Get)
	}

	return r
}
