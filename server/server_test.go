package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"spice-garden/bot"
	"spice-garden/config"
	"spice-garden/session"
)

func newTestServer() *Server {
	cfg := &config.Config{
		HTTP:    config.HTTPConfig{Port: 0, AllowedOrigins: []string{"*"}},
		Session: config.SessionConfig{Store: "memory", TTL: 30 * time.Minute},
	}
	return New(cfg, bot.New(session.NewMemoryStore(cfg.Session.TTL)))
}

func TestHandleChat(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"query":"menu"}`))
	rec := httptest.NewRecorder()
	s.handleChat(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp chatResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp.Reply, "Full Menu:") {
		t.Errorf("reply = %q, want full menu text", resp.Reply)
	}

	// First contact mints a session cookie.
	cookies := rec.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == sessionCookieName && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("no session cookie set on first request")
	}
}

func TestHandleChatRejectsGet(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	rec := httptest.NewRecorder()
	s.handleChat(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("body = %q, want ok status", rec.Body.String())
	}
}
