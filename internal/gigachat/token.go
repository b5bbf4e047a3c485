package gigachat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"tourgen/internal/config"
)

// expirySkew is the safety margin before a token's stated expiry at which it
// is already treated as stale, so a completion call never races the actual
// expiration during network latency.
const expirySkew = 60 * time.Second

// accessToken is the single process-wide credential. It is replaced
// wholesale on every successful exchange and never edited in place.
type accessToken struct {
	value     string
	expiresAt time.Time
}

// TokenManager owns the GigaChat bearer token lifecycle: acquisition, expiry
// tracking, reuse, and forced refresh. It is the only component that reads or
// writes the token value.
type TokenManager struct {
	authKey   string
	oauthURL  string
	scope     string
	transport *Transport
	logger    *zap.Logger

	mu    sync.Mutex
	token accessToken

	group singleflight.Group

	// now is swapped out in tests.
	now func() time.Time
}

// NewTokenManager creates a token manager starting in the empty state. The
// first Token call performs the credential exchange.
func NewTokenManager(cfg config.GigaChatConfig, transport *Transport, logger *zap.Logger) *TokenManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenManager{
		authKey:   cfg.AuthKey,
		oauthURL:  cfg.OAuthURL,
		scope:     cfg.Scope,
		transport: transport,
		logger:    logger,
		now:       time.Now,
	}
}

// Token returns a bearer token that is valid for at least expirySkew from
// now, reusing the held one when possible. Concurrent callers that observe a
// stale or empty state share a single in-flight credential exchange.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	if tok, ok := m.current(); ok {
		return tok, nil
	}

	v, err, _ := m.group.Do("oauth", func() (interface{}, error) {
		// A caller that queued behind a finished exchange can use its result.
		if tok, ok := m.current(); ok {
			return tok, nil
		}
		return m.acquire(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Invalidate discards the held token so the next Token call performs a fresh
// exchange. Completion failures do not call this automatically: a 401 on a
// token the manager believed valid is surfaced as a ProviderError instead.
func (m *TokenManager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = accessToken{}
}

func (m *TokenManager) current() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token.value == "" {
		return "", false
	}
	if !m.now().Before(m.token.expiresAt.Add(-expirySkew)) {
		return "", false
	}
	return m.token.value, true
}

func (m *TokenManager) acquire(ctx context.Context) (string, error) {
	if m.authKey == "" {
		return "", ErrAuthKeyMissing
	}

	// RqUID is a per-attempt correlation identifier, unrelated to the bearer
	// token itself.
	rquid := uuid.New().String()

	headers := map[string]string{
		"Content-Type":  "application/x-www-form-urlencoded",
		"Accept":        "application/json",
		"RqUID":         rquid,
		"Authorization": "Basic " + m.authKey,
	}

	resp, err := m.transport.Do(ctx, "oauth", http.MethodPost, m.oauthURL, headers, []byte("scope="+m.scope))
	if err != nil {
		return "", err
	}
	if resp.Status < 200 || resp.Status >= 300 {
		return "", &ProviderError{Op: "oauth", Status: resp.Status, Body: string(resp.Body)}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresAt   int64  `json:"expires_at"` // epoch milliseconds
	}
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return "", &MalformedResponseError{Op: "oauth", Err: err}
	}
	if payload.AccessToken == "" {
		return "", &MalformedResponseError{Op: "oauth", Err: fmt.Errorf("access_token missing")}
	}

	expiresAt := time.UnixMilli(payload.ExpiresAt)
	if !expiresAt.After(m.now()) {
		return "", &MalformedResponseError{Op: "oauth", Err: fmt.Errorf("expires_at %d is not in the future", payload.ExpiresAt)}
	}

	m.mu.Lock()
	m.token = accessToken{value: payload.AccessToken, expiresAt: expiresAt}
	m.mu.Unlock()

	m.logger.Debug("gigachat token acquired",
		zap.String("rquid", rquid),
		zap.Time("expires_at", expiresAt))

	return payload.AccessToken, nil
}
