package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/platedash/admin-api/internal/http/respond"
	"github.com/platedash/admin-api/internal/models"
	"github.com/platedash/admin-api/internal/models/dto"
	"github.com/platedash/admin-api/internal/storage"
)

// CustomerHandler owns the customer directory endpoints behind the admin
// table: list, rename, delete. Creation goes through the provisioning flow,
// never directly into the directory.
type CustomerHandler struct {
	store  storage.CustomerStore
	logger *log.Logger
}

// NewCustomerHandler constructs the handler.
func NewCustomerHandler(store storage.CustomerStore, logger *log.Logger) *CustomerHandler {
	return &CustomerHandler{store: store, logger: logger}
}

// Register attaches customer routes to the router.
func (h *CustomerHandler) Register(r *mux.Router) {
	r.HandleFunc("/customers", h.handleList).Methods(http.MethodGet)
	r.HandleFunc("/customers/{id:[0-9]+}", h.handleRename).Methods(http.MethodPatch)
	r.HandleFunc("/customers/{id:[0-9]+}", h.handleDelete).Methods(http.MethodDelete)
}

func (h *CustomerHandler) handleList(w http.ResponseWriter, r *http.Request) {
	customers, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("list customers", "err", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list customers")
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	respond.JSON(w, http.StatusOK, "ok", dto.CustomerListResponse{
		Data:  customers,
		Total: len(customers),
	})
}

func (h *CustomerHandler) handleRename(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}
	var req dto.RenameCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		respond.Error(w, http.StatusBadRequest, "name must not be empty")
		return
	}
	updated, err := h.store.Rename(r.Context(), id, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "customer not found")
			return
		}
		h.logger.Error("rename customer", "id", id, "err", err)
		respond.Error(w, http.StatusInternalServerError, "failed to rename customer")
		return
	}
	respond.JSON(w, http.StatusOK, "customer updated", updated)
}

func (h *CustomerHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := customerID(w, r)
	if !ok {
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "customer not found")
			return
		}
		h.logger.Error("delete customer", "id", id, "err", err)
		respond.Error(w, http.StatusInternalServerError, "failed to delete customer")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func customerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid customer id")
		return 0, false
	}
	return id, true
}
