// Package app builds the runtime components selected by configuration.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Eyobiel-12/savannaeetcafe/internal/config"
	"github.com/Eyobiel-12/savannaeetcafe/internal/db"
	"github.com/Eyobiel-12/savannaeetcafe/internal/gallery"
	"github.com/Eyobiel-12/savannaeetcafe/internal/logger"
	"github.com/Eyobiel-12/savannaeetcafe/internal/menu"
	"github.com/Eyobiel-12/savannaeetcafe/internal/reservation"
	"github.com/Eyobiel-12/savannaeetcafe/internal/storage"
)

func Logger(cfg *config.Config) zerolog.Logger {
	return logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Environment: cfg.AppEnv,
	})
}

// Closer releases a component built here.
type Closer func()

// Dispatcher returns the dispatcher named by DISPATCH_DRIVER.
func Dispatcher(cfg *config.Config, log zerolog.Logger) (reservation.Dispatcher, Closer, error) {
	switch cfg.DispatchDriver {
	case config.DriverEmailJS:
		d, err := MailDispatcher(cfg)
		if err != nil {
			return nil, nil, err
		}
		return d, func() {}, nil

	case config.DriverKafka:
		d, err := reservation.DialKafkaDispatcher(cfg.KafkaBrokerList, cfg.KafkaTopic, cfg.DispatchTimeout)
		if err != nil {
			return nil, nil, err
		}
		return d, func() {
			if err := d.Close(); err != nil {
				log.Error().Err(err).Msg("close kafka producer")
			}
		}, nil

	case config.DriverLog:
		return reservation.NewLogDispatcher(log), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown dispatch driver %q", cfg.DispatchDriver)
	}
}

// MailDispatcher is the EmailJS dispatcher, used directly or behind the
// Kafka relay.
func MailDispatcher(cfg *config.Config) (*reservation.EmailJSDispatcher, error) {
	templates := map[string]string{
		reservation.KindReservation: cfg.EmailJSTemplateID,
		reservation.KindContact:     cfg.EmailJSContactTemplateID,
	}

	return reservation.NewEmailJSDispatcher(reservation.EmailJSConfig{
		Endpoint:   cfg.EmailJSEndpoint,
		ServiceID:  cfg.EmailJSServiceID,
		PublicKey:  cfg.EmailJSPublicKey,
		PrivateKey: cfg.EmailJSPrivateKey,
		Templates:  templates,
		Timeout:    cfg.DispatchTimeout,
	})
}

// MenuRepository serves the menu from Postgres when DATABASE_URL is set,
// seeding an empty table from the embedded menu, and from the embedded
// menu otherwise.
func MenuRepository(ctx context.Context, cfg *config.Config, log zerolog.Logger) (menu.Repository, Closer, error) {
	static, err := menu.NewStaticRepository()
	if err != nil {
		return nil, nil, err
	}
	if cfg.DatabaseURL == "" {
		log.Info().Msg("serving embedded menu")
		return static, func() {}, nil
	}

	pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	repo := menu.NewPostgresRepository(pool)
	if err := seed(ctx, repo, static, log); err != nil {
		pool.Close()
		return nil, nil, err
	}

	log.Info().Msg("serving menu from postgres")
	return repo, pool.Close, nil
}

func seed(ctx context.Context, repo *menu.PostgresRepository, static *menu.StaticRepository, log zerolog.Logger) error {
	dishes, err := static.ListDishes(ctx)
	if err != nil {
		return err
	}

	n, err := repo.SeedIfEmpty(ctx, dishes)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Info().Int64("dishes", n).Msg("seeded menu table")
	}
	return nil
}

// Gallery lists from R2 when a bucket is configured, else the built-in set.
func Gallery(ctx context.Context, cfg *config.Config) (gallery.Source, error) {
	bucket := storage.Config{
		Endpoint:      cfg.R2Endpoint,
		AccessKey:     cfg.R2AccessKey,
		SecretKey:     cfg.R2SecretKey,
		Bucket:        cfg.R2BucketName,
		PublicBaseURL: cfg.R2PublicBaseURL,
	}
	if !bucket.Enabled() {
		return gallery.NewStaticSource(), nil
	}

	client, err := storage.NewR2Client(ctx, bucket)
	if err != nil {
		return nil, err
	}
	return gallery.NewBucketSource(client, cfg.GalleryPrefix), nil
}
