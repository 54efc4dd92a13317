package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/platedash/admin-api/internal/adminauth"
	"github.com/platedash/admin-api/internal/http/respond"
	"github.com/platedash/admin-api/internal/models/dto"
)

// AuthHandler owns the dashboard login endpoint.
type AuthHandler struct {
	accounts *adminauth.Accounts
	tokens   *adminauth.TokenManager
	logger   *log.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(accounts *adminauth.Accounts, tokens *adminauth.TokenManager, logger *log.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokens: tokens, logger: logger}
}

// Register attaches auth routes to the router.
func (h *AuthHandler) Register(r *mux.Router) {
	r.HandleFunc("/auth/login", h.handleLogin).Methods(http.MethodPost)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "username and password are required")
		return
	}
	account, err := h.accounts.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, adminauth.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Error("authenticate admin", "err", err)
		respond.Error(w, http.StatusInternalServerError, "failed to authenticate")
		return
	}
	token, err := h.tokens.Generate(account)
	if err != nil {
		h.logger.Error("generate token", "err", err)
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.JSON(w, http.StatusOK, "login successful", dto.LoginResponse{
		Token:     token,
		Username:  account.Username,
		Role:      account.Role,
		ExpiresAt: time.Now().Add(h.tokens.TTL()).UTC(),
	})
}
