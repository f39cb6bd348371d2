package app

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Eyobiel-12/savannaeetcafe/internal/config"
	"github.com/Eyobiel-12/savannaeetcafe/internal/gallery"
	"github.com/Eyobiel-12/savannaeetcafe/internal/menu"
	"github.com/Eyobiel-12/savannaeetcafe/internal/reservation"
)

func TestDispatcher_SelectsDriver(t *testing.T) {
	d, closeFn, err := Dispatcher(&config.Config{DispatchDriver: config.DriverLog}, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeFn()
	if _, ok := d.(*reservation.LogDispatcher); !ok {
		t.Fatalf("expected a log dispatcher, got %T", d)
	}

	d, _, err = Dispatcher(&config.Config{
		DispatchDriver:    config.DriverEmailJS,
		EmailJSServiceID:  "service_jevfu7s",
		EmailJSTemplateID: "template_38d2vsb",
		EmailJSPublicKey:  "public",
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := d.(*reservation.EmailJSDispatcher); !ok {
		t.Fatalf("expected an emailjs dispatcher, got %T", d)
	}

	if _, _, err := Dispatcher(&config.Config{DispatchDriver: "pigeon"}, zerolog.Nop()); err == nil {
		t.Fatalf("expected an error for an unknown driver")
	}
}

func TestMenuRepository_EmbeddedWithoutDatabase(t *testing.T) {
	repo, closeFn, err := MenuRepository(context.Background(), &config.Config{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeFn()

	if _, ok := repo.(*menu.StaticRepository); !ok {
		t.Fatalf("expected the embedded menu, got %T", repo)
	}
}

func TestGallery_StaticWithoutBucket(t *testing.T) {
	src, err := Gallery(context.Background(), &config.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := src.(*gallery.StaticSource); !ok {
		t.Fatalf("expected the built-in gallery, got %T", src)
	}
}
