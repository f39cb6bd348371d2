package reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSConfig holds the account and template ids of the EmailJS service.
type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	PublicKey  string
	PrivateKey string
	// Templates maps a payload kind to its template id.
	Templates map[string]string
	Timeout   time.Duration
}

// EmailJSDispatcher sends payloads through the EmailJS REST API.
type EmailJSDispatcher struct {
	cfg    EmailJSConfig
	client *http.Client
}

func NewEmailJSDispatcher(cfg EmailJSConfig) (*EmailJSDispatcher, error) {
	if cfg.ServiceID == "" {
		return nil, errors.New("missing EmailJS service id")
	}
	if cfg.PublicKey == "" {
		return nil, errors.New("missing EmailJS public key")
	}
	if cfg.Templates[KindReservation] == "" {
		return nil, errors.New("missing EmailJS reservation template id")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEmailJSEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	return &EmailJSDispatcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (d *EmailJSDispatcher) Send(ctx context.Context, p Payload) (Ack, error) {
	template, ok := d.cfg.Templates[p.Kind()]
	if !ok || template == "" {
		return Ack{}, d.reject(fmt.Errorf("no template for payload kind %q", p.Kind()))
	}

	body := map[string]any{
		"service_id":      d.cfg.ServiceID,
		"template_id":     template,
		"user_id":         d.cfg.PublicKey,
		"template_params": p,
	}
	if d.cfg.PrivateKey != "" {
		body["accessToken"] = d.cfg.PrivateKey
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return Ack{}, d.reject(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.Endpoint, bytes.NewBuffer(raw))
	if err != nil {
		return Ack{}, d.fail(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return Ack{}, d.fail(err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return Ack{}, d.fail(err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := fmt.Errorf("emailjs api error %d: %s", resp.StatusCode, bytes.TrimSpace(text))
		if rejectedStatus(resp.StatusCode) {
			return Ack{}, d.reject(apiErr)
		}
		return Ack{}, d.fail(apiErr)
	}

	return Ack{Dispatcher: "emailjs", Status: resp.StatusCode, Text: string(bytes.TrimSpace(text))}, nil
}

func (d *EmailJSDispatcher) fail(err error) error {
	return &DispatchError{Dispatcher: "emailjs", Err: err}
}

func (d *EmailJSDispatcher) reject(err error) error {
	return &DispatchError{Dispatcher: "emailjs", Permanent: true, Err: err}
}

// rejectedStatus is a 4xx that retrying will not change.
func rejectedStatus(code int) bool {
	if code == http.StatusRequestTimeout || code == http.StatusTooManyRequests {
		return false
	}
	return code >= 400 && code < 500
}
