package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/campusevents/campus-events/internal/handler"
)

func TestSignupEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
		"name":     "Alice",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}

	cookie := authCookie(t, rec)
	if !cookie.HttpOnly {
		t.Error("expected HttpOnly auth cookie")
	}

	var resp struct {
		User handler.UserDTO `json:"user"`
	}
	decodeBody(t, rec, &resp)
	if resp.User.Email != "alice@example.com" || resp.User.Name != "Alice" {
		t.Errorf("got user %+v", resp.User)
	}
	if resp.User.RegisteredEvents == nil || resp.User.CreatedEvents == nil {
		t.Error("expected relation arrays, not null")
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Error("response must not carry credentials")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "bob@example.com", "Bob")

	rec := app.do(t, http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    "bob@example.com",
		"password": "other-password",
		"name":     "Bobby",
	})
	if rec.Code != http.StatusConflict {
		t.Errorf("got status %d, want 409", rec.Code)
	}
}

func TestSignupMissingFields(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/auth/signup", map[string]string{
		"email": "carol@example.com",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("got status %d, want 422", rec.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "dave@example.com", "Dave")
	app.do(t, http.MethodPost, "/api/auth/logout", nil)

	rec := app.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "dave@example.com",
		"password": "password123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}
	authCookie(t, rec)

	var resp struct {
		User handler.UserDTO `json:"user"`
	}
	decodeBody(t, rec, &resp)
	if resp.User.Name != "Dave" {
		t.Errorf("got user %+v", resp.User)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "erin@example.com", "Erin")
	app.do(t, http.MethodPost, "/api/auth/logout", nil)

	rec := app.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "erin@example.com",
		"password": "wrong-password",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", rec.Code)
	}

	// Unknown emails get the same answer.
	rec = app.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", rec.Code)
	}
}

func TestGoogleLoginEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/api/auth/google", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d: %s", rec.Code, rec.Body.String())
	}
	authCookie(t, rec)

	var resp struct {
		User handler.UserDTO `json:"user"`
	}
	decodeBody(t, rec, &resp)
	if !strings.HasPrefix(resp.User.ID, "google_") {
		t.Errorf("got user id %q, want google_ prefix", resp.User.ID)
	}
}

func TestLogoutEndpoint(t *testing.T) {
	app := newTestApp(t)
	app.signup(t, "frank@example.com", "Frank")

	rec := app.do(t, http.MethodPost, "/api/auth/logout", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("got status %d", rec.Code)
	}

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "auth_token" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected auth cookie cleared")
	}
}

func TestMeEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/api/auth/me", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d", rec.Code)
	}
	var resp struct {
		Status string           `json:"status"`
		User   *handler.UserDTO `json:"user"`
	}
	decodeBody(t, rec, &resp)
	if resp.Status != "unauthenticated" || resp.User != nil {
		t.Errorf("got state %+v", resp)
	}

	app.signup(t, "grace@example.com", "Grace")
	rec = app.do(t, http.MethodGet, "/api/auth/me", nil)
	decodeBody(t, rec, &resp)
	if resp.Status != "authenticated" || resp.User == nil || resp.User.Email != "grace@example.com" {
		t.Errorf("got state %+v", resp)
	}
}
