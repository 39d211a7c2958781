package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gzai/boxfs/backend/box/api"
)

// HandlerConfig controls the HTTP endpoints built by Handlers.
type HandlerConfig struct {
	// UserKey resolves the token owner from the request. Nil means the
	// application-wide grant.
	UserKey func(r *http.Request) string

	// RedirectAfterCallback, when non-empty, makes the callback endpoint answer
	// with a redirect instead of a JSON body.
	RedirectAfterCallback string
}

// Handlers exposes the manager's flow over HTTP: a login redirect, the provider
// callback, and an authenticated identity probe.
type Handlers struct {
	manager *Manager
	client  *api.Client
	cfg     HandlerConfig
}

// NewHandlers wires the endpoints. client may be nil if Me is not mounted.
func NewHandlers(manager *Manager, client *api.Client, cfg HandlerConfig) *Handlers {
	return &Handlers{manager: manager, client: client, cfg: cfg}
}

func (h *Handlers) userKey(r *http.Request) string {
	if h.cfg.UserKey == nil {
		return ""
	}
	return h.cfg.UserKey(r)
}

// Login redirects the user to the provider's consent page.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.manager.AuthorizationURL(), http.StatusFound)
}

// Callback redeems the authorization code the provider appended to the redirect.
func (h *Handlers) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, &api.Error{Code: "invalid_request", Message: "missing authorization code", Status: http.StatusBadRequest})
		return
	}

	rec, err := h.manager.Exchange(r.Context(), code, h.userKey(r))
	if err != nil {
		writeError(w, err)
		return
	}

	if h.cfg.RedirectAfterCallback != "" {
		http.Redirect(w, r, h.cfg.RedirectAfterCallback, http.StatusFound)
		return
	}

	writeBody(w, http.StatusOK, map[string]any{
		"authorized": true,
		"expires_at": rec.ExpiresAt,
	})
}

// Me returns the authenticated Box account, proving the stored grant works.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.client.User(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeBody(w, http.StatusOK, user)
}

func writeBody(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		writeBody(w, apiErr.Status, map[string]string{
			"error":             apiErr.Code,
			"error_description": apiErr.Message,
		})
		return
	}
	writeBody(w, http.StatusInternalServerError, map[string]string{
		"error":             "internal_error",
		"error_description": err.Error(),
	})
}
