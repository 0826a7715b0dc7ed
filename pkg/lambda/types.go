package lambda

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"lambda-kit/pkg/response"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
	PathParams  map[string]string `json:"path_params"`
	RequestID   string            `json:"request_id"`
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(ctx context.Context, req *Request) (response.Envelope, error)

// FromAPIGateway converts an API Gateway proxy event to a generic request
func FromAPIGateway(event events.APIGatewayProxyRequest) *Request {
	req := &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
		PathParams:  event.PathParameters,
	}
	req.RequestID = req.Header(RequestIDHeader)
	if req.RequestID == "" {
		req.RequestID = event.RequestContext.RequestID
	}
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	return req
}

// FromHTTP converts a net/http request to a generic request
func FromHTTP(r *http.Request, pathParams map[string]string) (*Request, error) {
	var body []byte
	if r.Body != nil {
		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			return nil, err
		}
	}

	headers := make(map[string]string, len(r.Header))
	for name := range r.Header {
		headers[name] = r.Header.Get(name)
	}
	query := make(map[string]string)
	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			query[name] = values[0]
		}
	}

	req := &Request{
		Method:      r.Method,
		Path:        r.URL.Path,
		Headers:     headers,
		QueryParams: query,
		Body:        body,
		PathParams:  pathParams,
		RequestID:   r.Header.Get(RequestIDHeader),
	}
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	return req, nil
}

// Header returns the value of the named header, matched case-insensitively
func (r *Request) Header(name string) string {
	if v, ok := r.Headers[name]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header
func (r *Request) BearerToken() (string, bool) {
	parts := strings.Fields(r.Header("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
