package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is anything that can sign access-token claims.
type Signer interface {
	Alg() string
	KID() string
	Sign(Claims) (string, error)
}

// Verifier parses and verifies a raw compact JWT into Claims.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// Keypair bundles an EdDSA signer and verifier sharing one Ed25519 key.
// The key is generated at boot and never persisted; sessions simply do not
// survive a restart.
type Keypair struct {
	kid string
	key ed25519.PrivateKey
	pub ed25519.PublicKey
}

// NewEphemeralKeypair generates a fresh Ed25519 keypair with the given kid.
func NewEphemeralKeypair(kid string) (*Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate ed25519 key: %w", err)
	}

	return &Keypair{kid: kid, key: priv, pub: pub}, nil
}

func (k *Keypair) Alg() string { return jwt.SigningMethodEdDSA.Alg() }
func (k *Keypair) KID() string { return k.kid }

// Sign turns claims into a signed compact JWT string.
func (k *Keypair) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = k.kid
	return t.SignedString(k.key)
}

// Verify parses raw, checks the EdDSA signature and returns the claims.
// Expiry is checked by the jwt library; callers that want leeway or issuer
// enforcement use the Claims validators.
func (k *Keypair) Verify(raw string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("jwtx: unexpected signing method %q", t.Method.Alg())
		}
		return k.pub, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrInvalidToken
	}

	if !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
