package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cotador_telecom/internal/domain/authz"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var (
	ErrMissingToken = errors.New("auth: missing token")
	ErrInvalidToken = errors.New("auth: invalid token")
	ErrUnknownRole  = errors.New("auth: unknown role")
)

const (
	claimRole  = "role"
	claimEmail = "email"
	claimName  = "name"
)

// TokenService verifies HS256 access tokens issued by the identity provider
// and maps their claims to a Principal. Sign exists for local tooling.
type TokenService struct {
	Secret    []byte
	Issuer    string
	Audience  string
	ClockSkew time.Duration
	Now       func() time.Time
}

func NewTokenService(secret, issuer, audience string) *TokenService {
	return &TokenService{
		Secret:    []byte(secret),
		Issuer:    issuer,
		Audience:  audience,
		ClockSkew: 30 * time.Second,
		Now:       time.Now,
	}
}

func (s *TokenService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Verify parses raw, checks signature, issuer, audience and expiry, and
// returns the caller.
func (s *TokenService) Verify(raw string) (authz.Principal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return authz.Principal{}, ErrMissingToken
	}

	options := []jwt.ParseOption{
		jwt.WithKey(jwa.HS256, s.Secret),
		jwt.WithValidate(true),
		jwt.WithClock(jwt.ClockFunc(s.now)),
	}
	if s.ClockSkew > 0 {
		options = append(options, jwt.WithAcceptableSkew(s.ClockSkew))
	}
	if s.Issuer != "" {
		options = append(options, jwt.WithIssuer(s.Issuer))
	}
	if s.Audience != "" {
		options = append(options, jwt.WithAudience(s.Audience))
	}

	tok, err := jwt.ParseString(raw, options...)
	if err != nil {
		return authz.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if tok.Subject() == "" {
		return authz.Principal{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	role, ok := authz.ParseRole(stringClaim(tok, claimRole))
	if !ok {
		return authz.Principal{}, ErrUnknownRole
	}
	return authz.Principal{
		UserID: tok.Subject(),
		Role:   role,
		Email:  stringClaim(tok, claimEmail),
		Name:   stringClaim(tok, claimName),
	}, nil
}

// Sign issues a token for p valid for ttl.
func (s *TokenService) Sign(p authz.Principal, ttl time.Duration) (string, error) {
	now := s.now()
	builder := jwt.NewBuilder().
		Subject(p.UserID).
		IssuedAt(now).
		NotBefore(now).
		Expiration(now.Add(ttl)).
		Claim(claimRole, string(p.Role))
	if s.Issuer != "" {
		builder = builder.Issuer(s.Issuer)
	}
	if s.Audience != "" {
		builder = builder.Audience([]string{s.Audience})
	}
	if p.Email != "" {
		builder = builder.Claim(claimEmail, p.Email)
	}
	if p.Name != "" {
		builder = builder.Claim(claimName, p.Name)
	}

	tok, err := builder.Build()
	if err != nil {
		return "", err
	}
	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, s.Secret))
	if err != nil {
		return "", err
	}
	return string(signed), nil
}

func stringClaim(tok jwt.Token, name string) string {
	v, ok := tok.Get(name)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
