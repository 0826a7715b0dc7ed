// Package response builds the uniform envelopes Lambda proxy integrations
// return: a status code, CORS and content-type headers, and a JSON body.
//
// Both call shapes are equivalent:
//
//	response.Success(order, response.WithStatusCode(http.StatusCreated))
//	response.New(order).Success(response.WithStatusCode(http.StatusCreated))
//
// Failure bodies always have the form {"error": "<text>"}. Strings and errors
// are used as the text directly; structured values are JSON-encoded first, so
// they appear double-encoded in the body.
package response

import (
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"lambda-kit/internal/jsonutil"
)

// Default header names.
const (
	HeaderAllowOrigin      = "Access-Control-Allow-Origin"
	HeaderAllowCredentials = "Access-Control-Allow-Credentials"
	HeaderContentType      = "Content-Type"
)

// DefaultHeaders returns a fresh copy of the headers every envelope carries.
func DefaultHeaders() map[string]string {
	return map[string]string{
		HeaderAllowOrigin:      "*",
		HeaderAllowCredentials: "true",
		HeaderContentType:      "application/json",
	}
}

// Envelope is a structured HTTP response.
type Envelope struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// APIGatewayProxyResponse converts the envelope for an API Gateway proxy integration.
func (e Envelope) APIGatewayProxyResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: e.StatusCode,
		Headers:    e.Headers,
		Body:       e.Body,
	}
}

// Response holds a message waiting to be rendered as a success or a failure.
type Response struct {
	message Message
}

// New classifies message and returns a Response for it.
func New(message any) *Response {
	return &Response{message: MessageOf(message)}
}

// Success renders message as a success envelope.
func Success(message any, opts ...Option) Envelope {
	return New(message).Success(opts...)
}

// Fail renders message as a failure envelope.
func Fail(message any, opts ...Option) Envelope {
	return New(message).Fail(opts...)
}

// Message returns the classified message.
func (r *Response) Message() Message {
	return r.message
}

// Success returns a 200 envelope whose body is the JSON encoding of the
// message. A message that cannot be encoded yields a failure envelope for the
// same message instead, keeping the requested headers but not the status code.
func (r *Response) Success(opts ...Option) Envelope {
	o := buildOptions(http.StatusOK, opts)

	body, err := r.message.encode()
	if err != nil {
		return r.Fail(WithHeaders(o.headers))
	}

	return Envelope{
		StatusCode: o.statusCode,
		Headers:    o.headers,
		Body:       body,
	}
}

// Fail returns a 400 envelope whose body is {"error": "<text>"}. An absent
// message produces "{}".
func (r *Response) Fail(opts ...Option) Envelope {
	o := buildOptions(http.StatusBadRequest, opts)

	payload := failureBody{}
	if text, ok := r.message.describe(); ok {
		payload.Error = &text
	}
	body, _ := jsonutil.Marshal(payload)

	return Envelope{
		StatusCode: o.statusCode,
		Headers:    o.headers,
		Body:       string(body),
	}
}

type failureBody struct {
	Error *string `json:"error,omitempty"`
}
