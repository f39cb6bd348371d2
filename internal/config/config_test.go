package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPAddr != ":8000" || cfg.DispatchDriver != DriverLog {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.DispatchTimeout != 15*time.Second {
		t.Fatalf("expected 15s dispatch timeout, got %s", cfg.DispatchTimeout)
	}
	if cfg.Location().String() != "Europe/Amsterdam" {
		t.Fatalf("unexpected location %s", cfg.Location())
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://savanna.nl, https://www.savanna.nl ,")
	t.Setenv("DISPATCH_DRIVER", "kafka")
	t.Setenv("DISPATCH_TIMEOUT", "3s")
	t.Setenv("KAFKA_BROKER_LIST", "k1:9092,k2:9092")
	t.Setenv("EMAILJS_SERVICE_ID", "service_jevfu7s")
	t.Setenv("EMAILJS_TEMPLATE_ID", "template_38d2vsb")
	t.Setenv("EMAILJS_CONTACT_TEMPLATE_ID", "template_contact")
	t.Setenv("EMAILJS_PUBLIC_KEY", "public")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPAddr != ":9090" || cfg.DispatchTimeout != 3*time.Second {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, []string{"https://savanna.nl", "https://www.savanna.nl"}) {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
	if !reflect.DeepEqual(cfg.KafkaBrokerList, []string{"k1:9092", "k2:9092"}) {
		t.Fatalf("unexpected brokers %v", cfg.KafkaBrokerList)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	path := filepath.Join(t.TempDir(), "savanna.yaml")
	if err := os.WriteFile(path, []byte("http_addr: \":7000\"\ngallery_prefix: photos\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":7000" || cfg.GalleryPrefix != "photos" {
		t.Fatalf("config file not applied: %+v", cfg)
	}
}

func TestValidate_DriverRequirements(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"log needs nothing", Config{DispatchDriver: DriverLog, Timezone: "UTC"}, false},
		{"emailjs missing ids", Config{DispatchDriver: DriverEmailJS, Timezone: "UTC"}, true},
		{"emailjs complete", Config{
			DispatchDriver:           DriverEmailJS,
			EmailJSServiceID:         "service_jevfu7s",
			EmailJSTemplateID:        "template_38d2vsb",
			EmailJSContactTemplateID: "template_contact",
			EmailJSPublicKey:         "public",
			Timezone:                 "UTC",
		}, false},
		{"emailjs missing contact template", Config{
			DispatchDriver:    DriverEmailJS,
			EmailJSServiceID:  "service_jevfu7s",
			EmailJSTemplateID: "template_38d2vsb",
			EmailJSPublicKey:  "public",
			Timezone:          "UTC",
		}, true},
		{"kafka missing topic", Config{DispatchDriver: DriverKafka, KafkaBrokerList: []string{"k:9092"}, Timezone: "UTC"}, true},
		{"kafka complete", Config{
			DispatchDriver:           DriverKafka,
			KafkaBrokerList:          []string{"k:9092"},
			KafkaTopic:               "savanna.reservations",
			EmailJSServiceID:         "service_jevfu7s",
			EmailJSTemplateID:        "template_38d2vsb",
			EmailJSContactTemplateID: "template_contact",
			EmailJSPublicKey:         "public",
			Timezone:                 "UTC",
		}, false},
		{"partial r2", Config{DispatchDriver: DriverLog, R2BucketName: "b", Timezone: "UTC"}, true},
		{"unknown driver", Config{DispatchDriver: "pigeon", Timezone: "UTC"}, true},
		{"bad timezone", Config{DispatchDriver: DriverLog, Timezone: "Mars/Olympus"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_ListsMissingKeys(t *testing.T) {
	cfg := Config{DispatchDriver: DriverEmailJS, Timezone: "UTC"}

	err := cfg.Validate()
	if !errors.Is(err, ErrMissingEnv) {
		t.Fatalf("expected ErrMissingEnv, got %v", err)
	}
}

func TestValidate_KafkaNeedsContactTemplate(t *testing.T) {
	cfg := Config{
		DispatchDriver:    DriverKafka,
		KafkaBrokerList:   []string{"k:9092"},
		KafkaTopic:        "savanna.reservations",
		EmailJSServiceID:  "service_jevfu7s",
		EmailJSTemplateID: "template_38d2vsb",
		EmailJSPublicKey:  "public",
		Timezone:          "UTC",
	}

	err := cfg.Validate()
	if !errors.Is(err, ErrMissingEnv) || !strings.Contains(err.Error(), "EMAILJS_CONTACT_TEMPLATE_ID") {
		t.Fatalf("expected the contact template to be required, got %v", err)
	}
}
