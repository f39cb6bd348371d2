package i18n

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupI18nTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(MustLoad())
	r.GET("/api/i18n", handler.Current)
	r.GET("/api/i18n/:locale", handler.Get)
	return r
}

func TestI18nGet(t *testing.T) {
	r := setupI18nTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/i18n/nl", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Locale   Locale            `json:"locale"`
		Messages map[string]string `json:"messages"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Locale != Dutch || resp.Messages["nav.gallery"] != "Galerij" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/i18n/fr", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}

func TestI18nCurrent_UsesCookieThenHeader(t *testing.T) {
	r := setupI18nTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/i18n", nil)
	req.Header.Set("Accept-Language", "en-US")
	req.AddCookie(&http.Cookie{Name: PreferenceCookie, Value: "nl"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Locale Locale `json:"locale"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Locale != Dutch {
		t.Fatalf("expected cookie preference nl, got %s", resp.Locale)
	}
}
