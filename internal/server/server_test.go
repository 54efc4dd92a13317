package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/platedash/admin-api/internal/adminauth"
	"github.com/platedash/admin-api/internal/authclient"
	"github.com/platedash/admin-api/internal/config"
	"github.com/platedash/admin-api/internal/models"
	"github.com/platedash/admin-api/internal/stats"
	"github.com/platedash/admin-api/internal/storage/memory"
)

func testHandler(t *testing.T, upstreamURL string) http.Handler {
	t.Helper()

	adminsPath := filepath.Join(t.TempDir(), "admins.yaml")
	fixture := `admins:
  - username: ops
    password: correct-horse-battery
    role: admin
`
	if err := os.WriteFile(adminsPath, []byte(fixture), 0o600); err != nil {
		t.Fatalf("write admins file: %v", err)
	}
	accounts, err := adminauth.LoadAccounts(adminsPath)
	if err != nil {
		t.Fatalf("load accounts: %v", err)
	}

	store := memory.New()
	if _, err := store.Create(context.Background(), models.Customer{Name: "Alice Tan", Phone: "+60123456789"}); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	cfg := config.Config{CORSOrigins: []string{"*"}}
	return newHandler(cfg, Deps{
		Store:    store,
		Accounts: accounts,
		Tokens:   adminauth.NewTokenManager("test-secret", "platedash-admin", time.Hour),
		Creator:  authclient.New(upstreamURL, time.Second),
		Snapshot: stats.Default(),
		Logger:   log.New(io.Discard),
	})
}

func loginToken(t *testing.T, handler http.Handler) string {
	t.Helper()
	body := `{"username":"ops","password":"correct-horse-battery"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return env.Data.Token
}

func TestHealthIsPublic(t *testing.T) {
	handler := testHandler(t, "http://127.0.0.1:0")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	handler := testHandler(t, "http://127.0.0.1:0")
	for _, path := range []string{"/api/v1/customers", "/api/v1/stats/dashboard"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", path, rec.Code)
		}
	}
}

func TestLoginThenListCustomers(t *testing.T) {
	handler := testHandler(t, "http://127.0.0.1:0")
	token := loginToken(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Alice Tan") {
		t.Fatalf("seeded customer missing from list: %s", rec.Body.String())
	}
}

func TestProvisioningForwardsUpstream(t *testing.T) {
	var upstreamCalls int
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls++
		if r.URL.Path != "/api/auth/create" {
			t.Errorf("upstream path = %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer upstream.Close()

	handler := testHandler(t, upstream.URL)
	token := loginToken(t, handler)

	body := `{"name":"Dana Wong","phoneNumber":"+60161112222","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if upstreamCalls != 1 {
		t.Fatalf("upstream calls = %d", upstreamCalls)
	}

	// Provisioning must not push the new account into the directory.
	listReq := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
	listReq.Header.Set("Authorization", "Bearer "+token)
	listRec := httptest.NewRecorder()
	handler.ServeHTTP(listRec, listReq)
	if strings.Contains(listRec.Body.String(), "Dana Wong") {
		t.Fatal("created user leaked into the customer directory")
	}
}
