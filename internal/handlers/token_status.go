package handlers

import (
	"context"
	"net/http"
	"time"

	"lambda-kit/pkg/lambda"
	"lambda-kit/pkg/response"
	"lambda-kit/pkg/token"
)

// TokenStatus describes the expiry of a bearer token
type TokenStatus struct {
	Expired   bool         `json:"expired"`
	ExpiresAt time.Time    `json:"expiresAt"`
	Claims    token.Claims `json:"claims"`
}

// TokenStatusHandler reports whether the caller's bearer token has expired.
// Signatures are not checked, so the answer is informational only.
type TokenStatusHandler struct {
	runtime *lambda.Runtime
}

// NewTokenStatusHandler creates a new token status handler
func NewTokenStatusHandler(runtime *lambda.Runtime) *TokenStatusHandler {
	return &TokenStatusHandler{runtime: runtime}
}

// Handle implements lambda.HandlerFunc
func (h *TokenStatusHandler) Handle(ctx context.Context, req *lambda.Request) (response.Envelope, error) {
	log, err := h.runtime.NewLogger()
	if err != nil {
		return response.Envelope{}, err
	}
	log.Debug("token status request", req.RequestID, req.Method, req.Path)

	raw, ok := req.BearerToken()
	if !ok {
		log.Info("missing bearer token", req.RequestID)
		return response.Fail("Authorization header is required",
			response.WithStatusCode(http.StatusUnauthorized),
			response.WithHeader("WWW-Authenticate", "Bearer"),
		), nil
	}

	claims, err := token.Decode(raw)
	if err != nil {
		log.Info("undecodable token", req.RequestID, err.Error())
		return response.Fail(err), nil
	}

	expiresAt, err := token.ExpiresAt(claims)
	if err != nil {
		log.Info("token without usable exp claim", req.RequestID, err.Error())
		return response.Fail(err), nil
	}

	expired, err := token.DecodedTokenHasExpired(claims)
	if err != nil {
		return response.Fail(err), nil
	}

	log.Audit("token status", req.RequestID, claims["sub"], expired)

	return response.Success(TokenStatus{
		Expired:   expired,
		ExpiresAt: expiresAt.UTC(),
		Claims:    claims,
	}), nil
}
