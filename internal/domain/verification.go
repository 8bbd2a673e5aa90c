package domain

// Query parameter names the publishing platform uses for the handshake.
const (
	ParamMode        = "hub.mode"
	ParamVerifyToken = "hub.verify_token"
	ParamChallenge   = "hub.challenge"
)

// ModeSubscribe is the only hub.mode value accepted by the handshake.
const ModeSubscribe = "subscribe"

// VerificationFailedBody is the fixed 403 response body.
const VerificationFailedBody = "Verification failed"

// VerificationRequest is the transient subscription handshake sent as a GET.
// Absent query parameters are represented as empty strings.
type VerificationRequest struct {
	Mode        string `json:"hub.mode" validate:"required"`
	VerifyToken string `json:"hub.verify_token" validate:"required"`
	Challenge   string `json:"hub.challenge"`
}

// NewVerificationRequest builds a VerificationRequest from a single-valued
// parameter lookup. A nil map yields an empty request.
func NewVerificationRequest(params map[string]string) VerificationRequest {
	return VerificationRequest{
		Mode:        params[ParamMode],
		VerifyToken: params[ParamVerifyToken],
		Challenge:   params[ParamChallenge],
	}
}
