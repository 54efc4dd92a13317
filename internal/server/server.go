package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/platedash/admin-api/internal/adminauth"
	"github.com/platedash/admin-api/internal/config"
	"github.com/platedash/admin-api/internal/http/handlers"
	"github.com/platedash/admin-api/internal/middleware"
	"github.com/platedash/admin-api/internal/stats"
	"github.com/platedash/admin-api/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// Deps carries everything the router needs.
type Deps struct {
	Store    storage.CustomerStore
	Accounts *adminauth.Accounts
	Tokens   *adminauth.TokenManager
	Creator  handlers.UserCreator
	Snapshot stats.Snapshot
	Logger   *log.Logger
}

// New wires up middleware and routes and returns a ready server. Login and
// health are public; everything else under /api/v1 requires an admin token.
func New(cfg config.Config, deps Deps) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           newHandler(cfg, deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

func newHandler(cfg config.Config, deps Deps) http.Handler {
	router := mux.NewRouter()

	handlers.NewHealthHandler(time.Now()).Register(router)

	api := router.PathPrefix("/api/v1").Subrouter()
	handlers.NewAuthHandler(deps.Accounts, deps.Tokens, deps.Logger).Register(api)

	secured := api.NewRoute().Subrouter()
	secured.Use(adminauth.Middleware(deps.Tokens))
	handlers.NewCustomerHandler(deps.Store, deps.Logger).Register(secured)
	handlers.NewUserHandler(deps.Creator, deps.Logger).Register(secured)
	handlers.NewStatsHandler(deps.Snapshot).Register(secured)

	return middleware.CORS(cfg.CORSOrigins, middleware.Logging(deps.Logger, router))
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
