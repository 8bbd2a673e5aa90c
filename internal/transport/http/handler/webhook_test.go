package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/whatsapp-orchestrator/internal/application/webhook"
	"github.com/whatsapp-orchestrator/internal/domain"
)

// --- mock ---

type mockWebhookSvc struct{ mock.Mock }

func (m *mockWebhookSvc) Verify(ctx context.Context, req domain.VerificationRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockWebhookSvc) Acknowledge(ctx context.Context) domain.Ack {
	return m.Called(ctx).Get(0).(domain.Ack)
}

// --- helpers ---

func verifyTarget(params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	return "/v1/webhook?" + q.Encode()
}

func serveReal(token string, r *http.Request) *httptest.ResponseRecorder {
	h := NewWebhookHandler(webhook.NewService(webhook.Config{VerifyToken: token}, zerolog.Nop()))
	rr := httptest.NewRecorder()
	h.Handle(rr, r)
	return rr
}

// failingReader fails the test run loudly if the ack branch ever reads the body.
type failingReader struct{ t *testing.T }

func (f failingReader) Read([]byte) (int, error) {
	f.t.Error("request body must not be read")
	return 0, io.EOF
}

// --- verification ---

func TestHandle_Get_PassesQueryToService(t *testing.T) {
	svc := &mockWebhookSvc{}
	want := domain.VerificationRequest{Mode: "subscribe", VerifyToken: "SECRET123", Challenge: "abc"}
	svc.On("Verify", mock.Anything, want).Return("abc", nil)

	r := httptest.NewRequest(http.MethodGet, verifyTarget(map[string]string{
		"hub.mode": "subscribe", "hub.verify_token": "SECRET123", "hub.challenge": "abc",
	}), nil)
	rr := httptest.NewRecorder()
	NewWebhookHandler(svc).Handle(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "abc", rr.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_Get_ServiceErrorIsForbidden(t *testing.T) {
	for _, err := range []error{
		fmt.Errorf("token mismatch: %w", domain.ErrVerificationFailed),
		fmt.Errorf("missing: %w", domain.ErrMalformedRequest),
	} {
		svc := &mockWebhookSvc{}
		svc.On("Verify", mock.Anything, mock.Anything).Return("", err)
		rr := httptest.NewRecorder()
		NewWebhookHandler(svc).Handle(rr, httptest.NewRequest(http.MethodGet, "/v1/webhook", nil))

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "Verification failed", rr.Body.String())
	}
}

func TestHandle_Get_UnexpectedErrorIsInternal(t *testing.T) {
	svc := &mockWebhookSvc{}
	svc.On("Verify", mock.Anything, mock.Anything).Return("", errors.New("boom"))
	rr := httptest.NewRecorder()
	NewWebhookHandler(svc).Handle(rr, httptest.NewRequest(http.MethodGet, "/v1/webhook", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandle_Get_MatchingTokenEchoesChallenge(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, verifyTarget(map[string]string{
		"hub.mode": "subscribe", "hub.verify_token": "SECRET123", "hub.challenge": "abc",
	}), nil)
	rr := serveReal("SECRET123", r)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "abc", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
}

func TestHandle_Get_ChallengeWithReservedCharacters(t *testing.T) {
	challenge := "a b&c=d/é"
	r := httptest.NewRequest(http.MethodGet, verifyTarget(map[string]string{
		"hub.mode": "subscribe", "hub.verify_token": "SECRET123", "hub.challenge": challenge,
	}), nil)
	rr := serveReal("SECRET123", r)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, challenge, rr.Body.String())
}

func TestHandle_Get_WrongToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, verifyTarget(map[string]string{
		"hub.mode": "subscribe", "hub.verify_token": "WRONG", "hub.challenge": "abc",
	}), nil)
	rr := serveReal("SECRET123", r)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Verification failed", rr.Body.String())
}

func TestHandle_Get_SecretUnset(t *testing.T) {
	for _, token := range []string{"", "anything"} {
		r := httptest.NewRequest(http.MethodGet, verifyTarget(map[string]string{
			"hub.mode": "subscribe", "hub.verify_token": token, "hub.challenge": "abc",
		}), nil)
		rr := serveReal("", r)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "Verification failed", rr.Body.String())
	}
}

func TestHandle_Get_MissingParams(t *testing.T) {
	targets := []string{
		"/v1/webhook",
		"/v1/webhook?hub.verify_token=SECRET123&hub.challenge=abc",
		"/v1/webhook?hub.mode=subscribe&hub.challenge=abc",
	}
	for _, target := range targets {
		rr := serveReal("SECRET123", httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusForbidden, rr.Code, target)
		assert.Equal(t, "Verification failed", rr.Body.String(), target)
	}
}

// --- acknowledgment ---

func TestHandle_Post_Acknowledges(t *testing.T) {
	body := `{"entry":[{"id":"123","changes":[{"field":"messages"}]}]}`
	rr := serveReal("SECRET123", httptest.NewRequest(http.MethodPost, "/v1/webhook", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"status": "ready_for_messages"}`, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestHandle_Post_GarbageBodyStillAcknowledged(t *testing.T) {
	rr := serveReal("", httptest.NewRequest(http.MethodPost, "/v1/webhook", strings.NewReader("not-json")))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"status": "ready_for_messages"}`, rr.Body.String())
}

func TestHandle_OtherMethodsAcknowledge(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions} {
		rr := serveReal("SECRET123", httptest.NewRequest(method, "/v1/webhook", nil))
		assert.Equal(t, http.StatusOK, rr.Code, method)
		assert.Equal(t, `{"status": "ready_for_messages"}`, rr.Body.String(), method)
	}
}

func TestHandle_Post_DoesNotReadBody(t *testing.T) {
	svc := &mockWebhookSvc{}
	svc.On("Acknowledge", mock.Anything).Return(domain.Ack{Status: domain.AckStatus})
	r := httptest.NewRequest(http.MethodPost, "/v1/webhook", failingReader{t: t})
	rr := httptest.NewRecorder()
	NewWebhookHandler(svc).Handle(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
	svc.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}
