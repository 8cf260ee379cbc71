package auth

import "time"

// NewTestJWTService creates an HMAC JWT service with an injectable
// clock for deterministic expiry testing.
func NewTestJWTService(
	secret string,
	tokenLifetime time.Duration,
	timeFunc func() time.Time,
) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}

	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		clockSkew:     0, // No leeway so expiry boundaries are exact in tests
	}
}
