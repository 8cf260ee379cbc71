package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token format is invalid or the
	// signature doesn't match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates the user name or password is wrong.
	// Deliberately a single error for both cases.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnsupportedAlgorithm indicates a signing algorithm other than
	// HS256 was configured or found in a token header.
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
)
