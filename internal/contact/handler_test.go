package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Eyobiel-12/savannaeetcafe/internal/i18n"
	"github.com/Eyobiel-12/savannaeetcafe/internal/reservation"
)

func setupContactTestRouter(t *testing.T, d reservation.Dispatcher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewService(d, i18n.MustLoad(), zerolog.Nop()))
	r.POST("/api/contact", handler.Create)

	return r
}

func post(r *gin.Engine, m Message) *httptest.ResponseRecorder {
	body, _ := json.Marshal(m)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validMessage() Message {
	return Message{
		Name:    "Dawit",
		Email:   "dawit@example.com",
		Subject: "Private dinner",
		Message: "Do you host groups of twenty?",
	}
}

func TestContactCreate_Dispatches(t *testing.T) {
	var sent reservation.Payload
	r := setupContactTestRouter(t, reservation.DispatcherFunc(func(ctx context.Context, p reservation.Payload) (reservation.Ack, error) {
		sent = p
		return reservation.Ack{Dispatcher: "test"}, nil
	}))

	w := post(r, validMessage())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if sent.Kind() != reservation.KindContact || sent["subject"] != "Private dinner" || sent.Reference() == "" {
		t.Fatalf("unexpected payload %v", sent)
	}
}

func TestContactCreate_ValidationErrors(t *testing.T) {
	called := false
	r := setupContactTestRouter(t, reservation.DispatcherFunc(func(ctx context.Context, p reservation.Payload) (reservation.Ack, error) {
		called = true
		return reservation.Ack{}, nil
	}))

	w := post(r, Message{Email: "not-an-email", Subject: " "})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", w.Code)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	for _, f := range []string{"name", "email", "subject", "message"} {
		if resp.Errors[f] == "" {
			t.Fatalf("expected an error for %s, got %v", f, resp.Errors)
		}
	}
	if called {
		t.Fatalf("invalid message must not be dispatched")
	}
}

func TestContactCreate_DispatchFailure(t *testing.T) {
	r := setupContactTestRouter(t, reservation.DispatcherFunc(func(ctx context.Context, p reservation.Payload) (reservation.Ack, error) {
		return reservation.Ack{}, &reservation.DispatchError{Dispatcher: "test", Err: errors.New("down")}
	}))

	if w := post(r, validMessage()); w.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", w.Code)
	}
}
