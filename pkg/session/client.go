package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sportsmeet/sportsmeet-api/pkg/credstore"
)

// Credential store keys. Token and user are written as a pair; a record
// holding only one of the two is invalid residue and is purged on restore.
const (
	keyToken = "token"
	keyUser  = "user"
)

const defaultTimeout = 15 * time.Second

// Base URLs selected by the environment mode flag.
const (
	devBaseURL  = "http://localhost:8080"
	prodBaseURL = "https://api.sportsmeet.app"
)

// Config configures a Client.
type Config struct {
	// BaseURL overrides the environment-derived server address.
	BaseURL string
	// Development selects the development base URL when BaseURL is empty.
	Development bool
	// HTTPClient is the transport. Timeout policy belongs to it; a default
	// client with a 15s timeout is used when nil.
	HTTPClient *http.Client
	// Store holds the durable credentials.
	Store credstore.Store
	// Logger is used for diagnostics only.
	Logger zerolog.Logger
}

// Client issues auth requests against the server and mediates every read and
// write of the credential store. It holds no session state itself: the
// Provider owns the in-memory state machine.
type Client struct {
	baseURL string
	http    *http.Client
	store   credstore.Store
	log     zerolog.Logger

	// mu serializes credential writes: the token and profile must land, or
	// vanish, as a pair even when a logout races a login's persist.
	mu sync.Mutex
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = prodBaseURL
		if cfg.Development {
			baseURL = devBaseURL
		}
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		store:   cfg.Store,
		log:     cfg.Logger,
	}
}

// RegisterInput holds everything needed to create an account.
type RegisterInput struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Email         string `json:"email,omitempty"`
	DisplayName   string `json:"display_name,omitempty"`
	FavoriteSport string `json:"favorite_sport,omitempty"`
}

// ProfileUpdate holds the fields to change; nil fields are left untouched.
type ProfileUpdate struct {
	Email         *string `json:"email,omitempty"`
	DisplayName   *string `json:"display_name,omitempty"`
	FavoriteSport *string `json:"favorite_sport,omitempty"`
}

// authPayload is the wire shape of every successful auth response.
type authPayload struct {
	Token string   `json:"token"`
	User  *Profile `json:"user"`
}

// Restore rebuilds the session from the credential store. No network call is
// made. Any absent or malformed entry invalidates the whole record: partial
// residue is cleared and the session is Anonymous.
func (c *Client) Restore(ctx context.Context) Session {
	token, okToken := c.store.Get(ctx, keyToken)
	rawUser, okUser := c.store.Get(ctx, keyUser)
	if !okToken || !okUser || token == "" {
		c.clearStore(ctx)
		return anonymous()
	}

	var user Profile
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil || user.ID == "" {
		c.log.Warn().Msg("session: malformed cached profile, clearing credentials")
		c.clearStore(ctx)
		return anonymous()
	}

	return authenticated(token, &user)
}

// Login authenticates with the server. On success the token and profile are
// fully persisted before Login returns, so callers may immediately issue
// authenticated requests. On failure the store is untouched and an *AuthError
// is returned.
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	payload, err := c.call(ctx, http.MethodPost, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	if err != nil {
		return Session{}, err
	}

	c.persist(ctx, payload)
	return authenticated(payload.Token, payload.User), nil
}

// Register creates an account and signs in, with the same persistence
// contract as Login.
func (c *Client) Register(ctx context.Context, input RegisterInput) (Session, error) {
	payload, err := c.call(ctx, http.MethodPost, "/auth/register", input, "")
	if err != nil {
		return Session{}, err
	}

	c.persist(ctx, payload)
	return authenticated(payload.Token, payload.User), nil
}

// Logout tells the server to invalidate the token, then unconditionally
// clears the credential store. A user-initiated logout must never leave stale
// credentials on the device, so the local teardown happens even when the
// remote call fails.
func (c *Client) Logout(ctx context.Context) Session {
	if token, ok := c.store.Get(ctx, keyToken); ok && token != "" {
		if _, err := c.doRequest(ctx, http.MethodPost, "/auth/logout", nil, token); err != nil {
			c.log.Warn().Err(err).Msg("session: remote logout failed, clearing local credentials anyway")
		}
	}

	c.clearStore(ctx)
	return anonymous()
}

// UpdateProfile changes display attributes on the server and, on success,
// overwrites only the cached profile. The token entry is preserved.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*Profile, error) {
	token, ok := c.store.Get(ctx, keyToken)
	if !ok || token == "" {
		return nil, &AuthError{Message: "not authenticated", StatusCode: http.StatusUnauthorized, Code: "token_missing"}
	}

	payload, err := c.doRequest(ctx, http.MethodPatch, "/auth/profile", update, token)
	if err != nil {
		return nil, err
	}

	var user Profile
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, &AuthError{Message: "malformed server response"}
	}

	if raw, err := json.Marshal(&user); err == nil {
		c.mu.Lock()
		c.store.Set(ctx, keyUser, string(raw))
		c.mu.Unlock()
	}
	return &user, nil
}

// Discard clears the credential store without contacting the server. The
// Provider uses it when the server reports the held token as rejected.
func (c *Client) Discard(ctx context.Context) Session {
	c.clearStore(ctx)
	return anonymous()
}

// persist writes the token and profile pair under the client mutex, so a
// concurrent Logout or Discard cannot clear between the two writes and leave
// one entry behind. Write failures are absorbed by the store; a half-written
// pair from a crash is repaired on the next Restore.
func (c *Client) persist(ctx context.Context, payload *authPayload) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Set(ctx, keyToken, payload.Token)
	if raw, err := json.Marshal(payload.User); err == nil {
		c.store.Set(ctx, keyUser, string(raw))
	} else {
		c.store.Clear(ctx)
	}
}

// clearStore removes both credential entries as one critical section.
func (c *Client) clearStore(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Clear(ctx)
}

// call performs a request expecting an authPayload-shaped body.
func (c *Client) call(ctx context.Context, method, path string, body any, token string) (*authPayload, error) {
	raw, err := c.doRequest(ctx, method, path, body, token)
	if err != nil {
		return nil, err
	}

	var payload authPayload
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Token == "" || payload.User == nil {
		return nil, &AuthError{Message: "malformed server response"}
	}
	return &payload, nil
}

// doRequest issues one HTTP exchange. Transport failures (including timeouts)
// and non-2xx statuses both come back as *AuthError; nothing is persisted
// here.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, token string) ([]byte, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, &AuthError{Message: fmt.Sprintf("encode request: %v", err)}
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, &AuthError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &AuthError{Message: "network failure: " + err.Error()}
	}
	defer resp.Body.Close()

	var raw bytes.Buffer
	_, _ = raw.ReadFrom(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
			Code  string `json:"code"`
		}
		_ = json.Unmarshal(raw.Bytes(), &errBody)
		if errBody.Error == "" {
			errBody.Error = http.StatusText(resp.StatusCode)
		}
		return nil, &AuthError{Message: errBody.Error, StatusCode: resp.StatusCode, Code: errBody.Code}
	}

	return raw.Bytes(), nil
}
