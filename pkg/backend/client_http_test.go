package backend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tadbeerx/admin-console/internal/config"
	"github.com/tadbeerx/admin-console/internal/session"
	"github.com/tadbeerx/admin-console/pkg/backend"
)

func newTestClient(t *testing.T, srv *httptest.Server, store session.Store) *backend.Client {
	t.Helper()
	cfg := config.BackendConfig{BaseURL: srv.URL, Timeout: 2 * time.Second}
	client, err := backend.NewClient(cfg, store, srv.Client())
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	return client
}

func TestClient_BearerHeader_ReadFreshPerRequest(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"worker":{"id":"w1"}}`))
	}))
	defer srv.Close()

	store := session.NewMemStore()
	client := newTestClient(t, srv, store)
	ctx := context.Background()

	// no token yet: no Authorization header
	if _, err := client.GetWorker(ctx, "w1"); err != nil {
		t.Fatalf("GetWorker failed: %v", err)
	}

	// token set after client construction must be picked up on the next call
	store.Set("tok-123")
	if _, err := client.GetWorker(ctx, "w1"); err != nil {
		t.Fatalf("GetWorker failed: %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(seen))
	}
	if seen[0] != "" {
		t.Fatalf("expected no auth header before login, got %q", seen[0])
	}
	if seen[1] != "Bearer tok-123" {
		t.Fatalf("unexpected auth header: %q", seen[1])
	}
}

func TestClient_ErrorBody_MessageExtraction(t *testing.T) {
	cases := []struct {
		name string
		code int
		body string
		want string
	}{
		{"error key", http.StatusBadRequest, `{"error":"bad input"}`, "bad input"},
		{"message key", http.StatusConflict, `{"message":"already exists"}`, "already exists"},
		{"no body", http.StatusInternalServerError, ``, "HTTP 500"},
		{"non-json body", http.StatusBadGateway, `upstream exploded`, "HTTP 502"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.code)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := newTestClient(t, srv, session.NewMemStore())
			_, err := client.GetWorker(context.Background(), "w1")
			if err == nil {
				t.Fatalf("expected error for status %d", tc.code)
			}

			var re *backend.RequestError
			if !errors.As(err, &re) {
				t.Fatalf("expected *RequestError, got %T: %v", err, err)
			}
			if re.Status != tc.code {
				t.Fatalf("status = %d, want %d", re.Status, tc.code)
			}
			if re.Message != tc.want {
				t.Fatalf("message = %q, want %q", re.Message, tc.want)
			}
		})
	}
}

func TestClient_Unauthorized_ClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"expired"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := session.NewMemStore()
	store.Set("stale-token")
	client := newTestClient(t, srv, store)

	_, err := client.GetWorker(context.Background(), "w1")
	if err == nil {
		t.Fatal("expected error on 401")
	}
	if !backend.IsAuthError(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if store.Present() {
		t.Fatal("expected token cleared after 401")
	}

	// the friendly message replaces whatever the server sent
	var re *backend.RequestError
	if !errors.As(err, &re) || re.Message == "expired" {
		t.Fatalf("expected replacement message, got %v", err)
	}
}

func TestClient_NetworkFailure_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before use

	store := session.NewMemStore()
	store.Set("tok")
	cfg := config.BackendConfig{BaseURL: srv.URL, Timeout: time.Second}
	client, err := backend.NewClient(cfg, store, nil)
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	_, err = client.GetWorker(context.Background(), "w1")
	if !errors.Is(err, backend.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	// transport failures are not auth failures; the token survives
	if !store.Present() {
		t.Fatal("token must not be cleared on network failure")
	}
}

func TestClient_Login_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"ok","token":"fresh-token","user":{"userId":"u1","email":"a@b.co","role":"admin"}}`))
	}))
	defer srv.Close()

	store := session.NewMemStore()
	client := newTestClient(t, srv, store)

	resp, err := client.Login(context.Background(), "a@b.co", "pw")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.User.UserID != "u1" {
		t.Fatalf("unexpected user: %#v", resp.User)
	}
	if store.Get() != "fresh-token" {
		t.Fatalf("token not stored, got %q", store.Get())
	}
}

func TestClient_Login_Invalid_DoesNotStoreToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid credentials"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := session.NewMemStore()
	client := newTestClient(t, srv, store)

	if _, err := client.Login(context.Background(), "a@b.co", "wrong"); err == nil {
		t.Fatal("expected login failure")
	}
	if store.Present() {
		t.Fatal("token must not be stored on failed login")
	}
}

func TestClient_Logout_ClearsToken_EvenOnRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := session.NewMemStore()
	store.Set("tok")
	client := newTestClient(t, srv, store)

	if err := client.Logout(context.Background()); err == nil {
		t.Fatal("expected remote error")
	}
	if store.Present() {
		t.Fatal("logout must clear the token regardless of the remote result")
	}
}

func TestClient_Verify_ClearsTokenOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"bad token"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	store := session.NewMemStore()
	store.Set("tok")
	client := newTestClient(t, srv, store)

	if _, err := client.Verify(context.Background()); err == nil {
		t.Fatal("expected verify failure")
	}
	if store.Present() {
		t.Fatal("verify failure must clear the token")
	}
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	if _, err := backend.NewClient(config.BackendConfig{BaseURL: "not a url"}, nil, nil); err == nil {
		t.Fatal("expected error for invalid base url")
	}
}
