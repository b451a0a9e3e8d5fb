package transport

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenProvider hands the adapter a bearer token. An empty string means no
// token is available and the call must fail before any network I/O. How
// tokens are acquired or refreshed is not this package's concern.
type TokenProvider interface {
	AccessToken() string
}

// StaticTokenProvider serves a fixed token, mainly for tests and tooling.
type StaticTokenProvider string

func (p StaticTokenProvider) AccessToken() string { return string(p) }

// JWTTokenProvider holds the session's JWT and stops serving it once its exp
// claim has passed, so a known-dead token never costs a network round trip.
// The signature is not checked here; that is the server's job.
type JWTTokenProvider struct {
	mu    sync.RWMutex
	token string
}

func NewJWTTokenProvider(token string) *JWTTokenProvider {
	return &JWTTokenProvider{token: token}
}

// SetToken swaps in a fresh token, e.g. after login or refresh.
func (p *JWTTokenProvider) SetToken(token string) {
	p.mu.Lock()
	p.token = token
	p.mu.Unlock()
}

// Clear drops the token on logout.
func (p *JWTTokenProvider) Clear() {
	p.SetToken("")
}

func (p *JWTTokenProvider) AccessToken() string {
	p.mu.RLock()
	token := p.token
	p.mu.RUnlock()

	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return ""
	}
	if exp != nil && exp.Before(time.Now()) {
		return ""
	}
	return token
}
