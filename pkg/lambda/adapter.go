package lambda

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"lambda-kit/pkg/response"
)

// APIGatewayHandler is the signature aws-lambda-go expects for proxy integrations
type APIGatewayHandler func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Invoke runs h and turns a handler error into a 500 failure envelope.
// The request id is echoed back on every envelope.
func Invoke(ctx context.Context, h HandlerFunc, req *Request, log logrus.FieldLogger) response.Envelope {
	env, err := h(ctx, req)
	if err != nil {
		log.WithFields(logrus.Fields{
			"request_id": req.RequestID,
			"method":     req.Method,
			"path":       req.Path,
		}).WithError(err).Error("Handler failed")

		env = response.Fail("Internal server error", response.WithStatusCode(http.StatusInternalServerError))
	}

	if env.Headers == nil {
		env.Headers = response.DefaultHeaders()
	}
	env.Headers[RequestIDHeader] = req.RequestID
	return env
}

// Adapt wraps a generic handler for API Gateway proxy events
func Adapt(h HandlerFunc, log logrus.FieldLogger) APIGatewayHandler {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		req := FromAPIGateway(event)
		return Invoke(ctx, h, req, log).APIGatewayProxyResponse(), nil
	}
}
