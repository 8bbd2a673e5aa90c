package lambdatransport

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/whatsapp-orchestrator/internal/application/webhook"
	"github.com/whatsapp-orchestrator/internal/domain"
	"github.com/whatsapp-orchestrator/internal/transport/status"
)

// Handler adapts the webhook service to API Gateway proxy events.
type Handler struct {
	svc webhook.Service
}

func NewHandler(svc webhook.Service) *Handler {
	return &Handler{svc: svc}
}

// Handle dispatches on the HTTP method. It never returns an error; every
// outcome is a proxy response.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if req.HTTPMethod == http.MethodGet {
		return h.verify(ctx, req), nil
	}
	ack := h.svc.Acknowledge(ctx)
	return response(http.StatusOK, "application/json", string(ack.Body())), nil
}

func (h *Handler) verify(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	// QueryStringParameters is nil when the request carried no query string.
	challenge, err := h.svc.Verify(ctx, domain.NewVerificationRequest(req.QueryStringParameters))
	if err != nil {
		return response(status.FromVerifyError(err), "text/plain; charset=utf-8", domain.VerificationFailedBody)
	}
	return response(http.StatusOK, "text/plain; charset=utf-8", challenge)
}

func response(code int, contentType, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: code,
		Headers:    map[string]string{"Content-Type": contentType},
		Body:       body,
	}
}
