package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Dispatch drivers.
const (
	DriverLog     = "log"
	DriverEmailJS = "emailjs"
	DriverKafka   = "kafka"
)

type Config struct {
	AppEnv   string `mapstructure:"app_env"`
	HTTPAddr string `mapstructure:"http_addr"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`

	// Empty means the embedded menu is served.
	DatabaseURL string `mapstructure:"database_url"`

	DispatchDriver  string        `mapstructure:"dispatch_driver"`
	DispatchTimeout time.Duration `mapstructure:"dispatch_timeout"`

	EmailJSEndpoint          string `mapstructure:"emailjs_endpoint"`
	EmailJSServiceID         string `mapstructure:"emailjs_service_id"`
	EmailJSTemplateID        string `mapstructure:"emailjs_template_id"`
	EmailJSContactTemplateID string `mapstructure:"emailjs_contact_template_id"`
	EmailJSPublicKey         string `mapstructure:"emailjs_public_key"`
	EmailJSPrivateKey        string `mapstructure:"emailjs_private_key"`

	KafkaBrokerList []string `mapstructure:"kafka_broker_list"`
	KafkaTopic      string   `mapstructure:"kafka_topic"`

	R2Endpoint      string `mapstructure:"r2_endpoint"`
	R2AccessKey     string `mapstructure:"r2_access_key"`
	R2SecretKey     string `mapstructure:"r2_secret_key"`
	R2BucketName    string `mapstructure:"r2_bucket_name"`
	R2PublicBaseURL string `mapstructure:"r2_public_base_url"`
	GalleryPrefix   string `mapstructure:"gallery_prefix"`

	Timezone string `mapstructure:"timezone"`
}

var defaults = map[string]any{
	"app_env":                     "development",
	"http_addr":                   ":8000",
	"log_level":                   "info",
	"log_format":                  "json",
	"cors_allowed_origins":        "http://localhost:3000",
	"database_url":                "",
	"dispatch_driver":             DriverLog,
	"dispatch_timeout":            "15s",
	"emailjs_endpoint":            "https://api.emailjs.com/api/v1.0/email/send",
	"emailjs_service_id":          "",
	"emailjs_template_id":         "",
	"emailjs_contact_template_id": "",
	"emailjs_public_key":          "",
	"emailjs_private_key":         "",
	"kafka_broker_list":           "localhost:9092",
	"kafka_topic":                 "savanna.reservations",
	"r2_endpoint":                 "",
	"r2_access_key":               "",
	"r2_secret_key":               "",
	"r2_bucket_name":              "",
	"r2_public_base_url":          "",
	"gallery_prefix":              "gallery",
	"timezone":                    "Europe/Amsterdam",
}

// Load reads the environment (and .env outside production), then an
// optional config file, over the defaults.
func Load(cfgFile string) (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	decoderConfigOption := viper.DecoderConfigOption(func(c *mapstructure.DecoderConfig) {
		c.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			trimmedSliceHook(","),
		)
	})
	if err := v.Unmarshal(&cfg, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// trimmedSliceHook splits a string on sep into a []string, dropping blanks.
func trimmedSliceHook(sep string) mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf([]string(nil)) {
			return data, nil
		}

		kept := []string{}
		for _, p := range strings.Split(reflect.ValueOf(data).String(), sep) {
			if p = strings.TrimSpace(p); p != "" {
				kept = append(kept, p)
			}
		}
		return kept, nil
	}
}

// Validate checks that each selected driver has the settings it needs.
func (c *Config) Validate() error {
	var missing []string
	require := func(key, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, strings.ToUpper(key))
		}
	}

	// Every kind the API accepts needs a template, including the ones the
	// mail worker relays from Kafka.
	requireEmailJS := func() {
		require("emailjs_service_id", c.EmailJSServiceID)
		require("emailjs_template_id", c.EmailJSTemplateID)
		require("emailjs_contact_template_id", c.EmailJSContactTemplateID)
		require("emailjs_public_key", c.EmailJSPublicKey)
	}

	switch c.DispatchDriver {
	case DriverLog:
	case DriverEmailJS:
		requireEmailJS()
	case DriverKafka:
		if len(c.KafkaBrokerList) == 0 {
			missing = append(missing, "KAFKA_BROKER_LIST")
		}
		require("kafka_topic", c.KafkaTopic)
		requireEmailJS()
	default:
		return fmt.Errorf("unknown DISPATCH_DRIVER %q", c.DispatchDriver)
	}

	if c.R2Enabled() {
		require("r2_endpoint", c.R2Endpoint)
		require("r2_access_key", c.R2AccessKey)
		require("r2_secret_key", c.R2SecretKey)
		require("r2_bucket_name", c.R2BucketName)
		require("r2_public_base_url", c.R2PublicBaseURL)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingEnv, strings.Join(missing, ", "))
	}
	return nil
}

var ErrMissingEnv = errors.New("missing env var")

// R2Enabled reports whether any bucket setting is present.
func (c *Config) R2Enabled() bool {
	return c.R2Endpoint != "" || c.R2AccessKey != "" || c.R2SecretKey != "" || c.R2BucketName != ""
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
