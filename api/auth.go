package api

import (
	"net/http"

	"github.com/tadbeerx/admin-console/internal/session"
	"github.com/tadbeerx/admin-console/pkg/backend"
)

// SessionHandler serves the login page and the logout action. Logout always
// clears the local token and redirects, even when the remote call fails.
type SessionHandler struct {
	client *backend.Client
	store  session.Store
}

func NewSessionHandler(client *backend.Client, store session.Store) *SessionHandler {
	return &SessionHandler{client: client, store: store}
}

func (h *SessionHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.store.Present() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	renderPage(w, "login", map[string]any{})
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderPage(w, "login", map[string]any{"Error": "invalid form submission"})
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		renderPage(w, "login", map[string]any{"Error": "email and password are required"})
		return
	}

	if _, err := h.client.Login(r.Context(), email, password); err != nil {
		// surface the server's message verbatim
		renderPage(w, "login", map[string]any{"Error": err.Error()})
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// best effort remote signout; Logout clears the store either way
	_ = h.client.Logout(r.Context())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Verify relays the remote session check as JSON; failure clears the token.
func (h *SessionHandler) Verify(w http.ResponseWriter, r *http.Request) {
	user, err := h.client.Verify(r.Context())
	if err != nil {
		writeBackendError(w, err)
		return
	}
	writeJSON(w, map[string]any{"user": user}, http.StatusOK)
}
