package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so transports can map them to HTTP status codes.
var (
	// ErrVerificationFailed means hub.mode or hub.verify_token did not match.
	ErrVerificationFailed = errors.New("verification failed")
	// ErrMalformedRequest means a required handshake parameter was absent.
	ErrMalformedRequest = errors.New("malformed verification request")
)
