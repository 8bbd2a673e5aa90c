// Package status maps webhook service errors onto HTTP status codes for
// every transport that fronts the service.
package status

import (
	"errors"
	"net/http"

	"github.com/whatsapp-orchestrator/internal/domain"
)

// FromVerifyError maps a Verify error to the status returned to the platform.
// Malformed requests and mismatches are indistinguishable on the wire.
func FromVerifyError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrVerificationFailed), errors.Is(err, domain.ErrMalformedRequest):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
