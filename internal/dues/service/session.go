package service

import (
	"context"
	"time"

	"github.com/ovalview/hoadues/internal/dues/domain"
	"github.com/ovalview/hoadues/pkg/jwtx"
)

// SessionService mints access tokens for authenticated users. Tokens carry
// subject (user ID), username and role; privileged handlers read identity
// from the verified claims only.
type SessionService struct {
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

// AccessToken is the minted token plus its lifetime for the response body.
type AccessToken struct {
	Token     string
	ExpiresIn time.Duration
}

func (s *SessionService) Issue(ctx context.Context, user domain.User) (AccessToken, error) {
	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(
		user.ID,
		user.Username,
		user.Role,
		ttl,
		s.Issuer,
		time.Now().UTC(),
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return AccessToken{}, err
	}

	return AccessToken{Token: token, ExpiresIn: ttl}, nil
}
