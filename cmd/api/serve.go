package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Eyobiel-12/savannaeetcafe/internal/app"
	"github.com/Eyobiel-12/savannaeetcafe/internal/config"
	"github.com/Eyobiel-12/savannaeetcafe/internal/contact"
	"github.com/Eyobiel-12/savannaeetcafe/internal/i18n"
	"github.com/Eyobiel-12/savannaeetcafe/internal/logger"
	"github.com/Eyobiel-12/savannaeetcafe/internal/menu"
	"github.com/Eyobiel-12/savannaeetcafe/internal/reservation"
	"github.com/Eyobiel-12/savannaeetcafe/internal/restaurant"
	"github.com/Eyobiel-12/savannaeetcafe/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

func serve(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := app.Logger(cfg)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── I18N ─────────────────────────
	bundle, err := i18n.Load()
	if err != nil {
		return err
	}

	// ───────────────────────── MENU ─────────────────────────
	menuRepo, closeMenu, err := app.MenuRepository(ctx, cfg, logger.Component(log, "menu"))
	if err != nil {
		return err
	}
	defer closeMenu()

	menuService := menu.NewService(menuRepo, menu.NewLogReporter(logger.Component(log, "menu")))

	// ───────────────────────── DISPATCH ─────────────────────────
	dispatcher, closeDispatcher, err := app.Dispatcher(cfg, log)
	if err != nil {
		return err
	}
	defer closeDispatcher()

	reservationService := reservation.NewService(
		dispatcher,
		reservation.WithLocation(cfg.Location()),
		reservation.WithBundle(bundle),
		reservation.WithLogger(logger.Component(log, "reservation")),
	)
	contactService := contact.NewService(dispatcher, bundle, logger.Component(log, "contact"))

	// ───────────────────────── GALLERY ─────────────────────────
	gallerySource, err := app.Gallery(ctx, cfg)
	if err != nil {
		return err
	}

	r := router.NewRouter(router.Deps{
		Log:            logger.Component(log, "http"),
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Menu:           menuService,
		Reservation:    reservationService,
		Contact:        contactService,
		Gallery:        gallerySource,
		Restaurant:     restaurant.NewService(restaurant.Savanna, cfg.Location()),
		I18n:           bundle,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", cfg.HTTPAddr).
			Str("dispatch", cfg.DispatchDriver).
			Msg("api listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
