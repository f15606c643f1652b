package jwtx

import "errors"

var (
	// ErrIssuer reports a token minted by a different issuer.
	ErrIssuer = errors.New("jwtx: unexpected issuer")

	// ErrExpired reports a token past its exp claim.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrNotYetValid reports a token used before its nbf claim.
	ErrNotYetValid = errors.New("jwtx: token not yet valid")

	// ErrInvalidToken reports a token that failed signature or shape checks.
	ErrInvalidToken = errors.New("jwtx: invalid token")
)
