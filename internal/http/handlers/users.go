package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/platedash/admin-api/internal/authclient"
	"github.com/platedash/admin-api/internal/http/respond"
	"github.com/platedash/admin-api/internal/models"
	"github.com/platedash/admin-api/internal/models/dto"
)

// UserCreator is the slice of the auth client the handler needs.
type UserCreator interface {
	Create(ctx context.Context, in dto.CreateUserRequest) (authclient.CreatedUser, error)
}

// UserHandler forwards user creation to the platform's auth service. The
// created account does not appear in the customer directory; the directory
// is refreshed from its own store.
type UserHandler struct {
	creator UserCreator
	logger  *log.Logger
}

// NewUserHandler constructs the handler.
func NewUserHandler(creator UserCreator, logger *log.Logger) *UserHandler {
	return &UserHandler{creator: creator, logger: logger}
}

// Register attaches the provisioning route to the router.
func (h *UserHandler) Register(r *mux.Router) {
	r.HandleFunc("/users", h.handleCreate).Methods(http.MethodPost)
}

func (h *UserHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.DOB = strings.TrimSpace(req.DOB)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.Role = strings.TrimSpace(req.Role)
	if req.Name == "" || req.PhoneNumber == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "name, phoneNumber, and password are required")
		return
	}
	if req.Role == "" {
		req.Role = models.DefaultRole
	} else if !models.KnownRole(req.Role) {
		respond.Error(w, http.StatusBadRequest, fmt.Sprintf("unknown role %q", req.Role))
		return
	}

	created, err := h.creator.Create(r.Context(), req)
	if err != nil {
		var apiErr *authclient.Error
		if errors.As(err, &apiErr) {
			h.logger.Warn("user creation failed", "kind", apiErr.Kind, "status", apiErr.StatusCode, "msg", apiErr.Message)
			switch apiErr.Kind {
			case authclient.KindValidation:
				respond.Error(w, http.StatusUnprocessableEntity, apiErr.Message)
			case authclient.KindNetwork:
				respond.Error(w, http.StatusGatewayTimeout, "auth service unreachable")
			default:
				respond.Error(w, http.StatusBadGateway, apiErr.Message)
			}
			return
		}
		h.logger.Error("user creation failed", "err", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	respond.JSON(w, http.StatusCreated, "User created successfully", created)
}
