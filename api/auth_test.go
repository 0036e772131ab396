package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/tadbeerx/admin-console/internal/config"
	"github.com/tadbeerx/admin-console/internal/session"
	"github.com/tadbeerx/admin-console/pkg/backend"
)

func newAuthFixture(t *testing.T, remote http.HandlerFunc) (*SessionHandler, session.Store, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(remote)
	t.Cleanup(srv.Close)

	store := session.NewMemStore()
	cfg := config.BackendConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}
	client, err := backend.NewClient(cfg, store, srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	return NewSessionHandler(client, store), store, srv
}

func postLogin(handler *SessionHandler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.Login(rec, req)
	return rec
}

func TestLogin_SuccessStoresTokenAndRedirects(t *testing.T) {
	handler, store, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok","token":"tok-1","user":{"userId":"u1","role":"admin"}}`))
	})

	rec := postLogin(handler, url.Values{"email": {"a@b.co"}, "password": {"pw"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if rec.Header().Get("Location") != "/" {
		t.Fatalf("redirect = %q", rec.Header().Get("Location"))
	}
	if store.Get() != "tok-1" {
		t.Fatalf("token = %q", store.Get())
	}
}

func TestLogin_FailureShowsServerMessage(t *testing.T) {
	handler, store, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid credentials"}`, http.StatusBadRequest)
	})

	rec := postLogin(handler, url.Values{"email": {"a@b.co"}, "password": {"bad"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with inline error", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid credentials") {
		t.Fatalf("login page must carry the server message, got: %s", rec.Body.String())
	}
	if store.Present() {
		t.Fatal("failed login must not store a token")
	}
}

func TestLogin_MissingFields(t *testing.T) {
	handler, _, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("remote must not be called for an incomplete form")
	})

	rec := postLogin(handler, url.Values{"email": {"a@b.co"}})
	if !strings.Contains(rec.Body.String(), "email and password are required") {
		t.Fatalf("expected inline validation message, got: %s", rec.Body.String())
	}
}

func TestLoginPage_RedirectsWhenSignedIn(t *testing.T) {
	handler, store, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	store.Set("tok")

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	handler.LoginPage(rec, req)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect home, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestLogout_ClearsTokenDespiteRemoteError(t *testing.T) {
	handler, store, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	})
	store.Set("tok")

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	if store.Present() {
		t.Fatal("logout must clear the token even when the remote call fails")
	}
}
