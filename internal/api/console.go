package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ashureev/console-gate/internal/auth"
	"github.com/ashureev/console-gate/internal/console"
	"github.com/ashureev/console-gate/internal/domain"
	"github.com/go-chi/chi/v5"
)

// ConsoleHandler wires the console gateways to HTTP routes.
type ConsoleHandler struct {
	auth      *auth.Gateway
	commands  *console.Gateway
	loginPage http.Handler
	mainPage  http.Handler
	feed      http.Handler
}

// NewConsoleHandler creates the console HTTP handler. The page and
// feed handlers are optional; nil disables the corresponding routes.
func NewConsoleHandler(authGw *auth.Gateway, commands *console.Gateway, loginPage, mainPage, feed http.Handler) *ConsoleHandler {
	return &ConsoleHandler{
		auth:      authGw,
		commands:  commands,
		loginPage: loginPage,
		mainPage:  mainPage,
		feed:      feed,
	}
}

// RegisterRoutes registers console routes.
func (h *ConsoleHandler) RegisterRoutes(r chi.Router) {
	r.Route("/console", func(r chi.Router) {
		if h.loginPage != nil {
			r.Get("/", h.loginPage.ServeHTTP)
		}
		if h.mainPage != nil {
			r.Get("/main", h.mainPage.ServeHTTP)
		}
		if h.feed != nil {
			r.Get("/ws", h.feed.ServeHTTP)
		}

		r.Post("/login", h.Login)

		r.Get("/check-session", h.requireAuth(h.CheckSession))
		r.Post("/logout", h.requireAuth(h.Logout))
		r.Post("/clear-history", h.requireAuth(h.ClearHistory))
		r.Post("/command", h.requireAuth(h.Command))
		r.Get("/history", h.requireAuth(h.History))
		r.Get("/status", h.requireAuth(h.Status))
	})
}

type loginRequest struct {
	Principal string `json:"principal"`
	Secret    string `json:"secret"`
}

// Login authenticates the credential pair and issues a bearer token.
func (h *ConsoleHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}
	if req.Principal == "" || req.Secret == "" {
		JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "principal and secret are required",
		})
		return
	}

	sess, err := h.auth.Login(req.Principal, req.Secret)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			JSON(w, http.StatusUnauthorized, map[string]interface{}{
				"success": false,
				"error":   "invalid credentials",
			})
			return
		}
		slog.Error("Login failed to issue session", "error", err)
		Error(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   sess.Token,
	})
}

// CheckSession confirms the caller's token is still valid.
func (h *ConsoleHandler) CheckSession(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]bool{"valid": true})
}

// Logout revokes the caller's session. Always succeeds.
func (h *ConsoleHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(r.Header.Get("Authorization"))
	JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Command executes one console command and returns its captured
// output. Execution failures surface in the payload, never as an HTTP
// error status.
func (h *ConsoleHandler) Command(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Command string `json:"command"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}

	JSON(w, http.StatusOK, h.commands.Execute(req.Command))
}

// History returns the recorded console history, oldest first.
func (h *ConsoleHandler) History(w http.ResponseWriter, r *http.Request) {
	entries := h.commands.History()
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	JSON(w, http.StatusOK, entries)
}

// ClearHistory empties the history buffer.
func (h *ConsoleHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	cleared := h.commands.ClearHistory()
	JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("cleared %d entries", cleared),
		"cleared": cleared,
	})
}

// Status returns the server process status projection.
func (h *ConsoleHandler) Status(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.commands.Status())
}
