// Package authclient talks to the platform's auth service, the opaque
// collaborator that owns customer account creation.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/platedash/admin-api/internal/models/dto"
)

const createPath = "/api/auth/create"

// ErrorKind categorizes a failed creation attempt so callers can react
// without parsing message text.
type ErrorKind string

const (
	// KindValidation means the auth service rejected the payload (4xx).
	KindValidation ErrorKind = "validation"
	// KindUpstream means the auth service failed internally (5xx).
	KindUpstream ErrorKind = "upstream"
	// KindNetwork means the request never produced a response.
	KindNetwork ErrorKind = "network"
)

// Error describes a failed creation attempt.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("auth service: %s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("auth service: %s: %s", e.Kind, e.Message)
}

// fallbackMessage is shown when the auth service supplies no message body.
const fallbackMessage = "user creation failed"

// CreatedUser is the best-effort view of a successful creation response.
// The auth service may return an empty body; all fields are optional.
type CreatedUser struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role,omitempty"`
}

// Client issues creation requests against the auth service.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New builds a client for the given base URL. The timeout bounds the whole
// request so a hung auth service cannot stall provisioning indefinitely.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Create issues exactly one POST to the auth service's creation endpoint.
// Statuses 200 and 201 are success; anything else is returned as an *Error.
func (c *Client) Create(ctx context.Context, in dto.CreateUserRequest) (CreatedUser, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return CreatedUser{}, fmt.Errorf("marshal create payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+createPath, bytes.NewReader(body))
	if err != nil {
		return CreatedUser{}, fmt.Errorf("build create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return CreatedUser{}, &Error{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		var created CreatedUser
		// An empty or unexpected success body is fine; the server-assigned
		// record is not reflected into any local state.
		_ = json.NewDecoder(resp.Body).Decode(&created)
		return created, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return CreatedUser{}, &Error{
			Kind:       KindValidation,
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(resp),
		}
	default:
		return CreatedUser{}, &Error{
			Kind:       KindUpstream,
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(resp),
		}
	}
}

func upstreamMessage(resp *http.Response) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
	}
	return fallbackMessage
}
