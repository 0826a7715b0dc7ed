package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"lambda-kit/pkg/lambda"
	"lambda-kit/pkg/response"
)

// CORS answers preflight requests with the same headers envelopes carry
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}

		for name, value := range response.DefaultHeaders() {
			c.Header(name, value)
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept-Encoding, Authorization, "+lambda.RequestIDHeader)
		c.AbortWithStatus(http.StatusNoContent)
	}
}

// RequestLogger middleware for logging HTTP requests
func RequestLogger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		logrus.WithFields(logrus.Fields{
			"timestamp":   param.TimeStamp.Format(time.RFC3339),
			"method":      param.Method,
			"path":        param.Path,
			"status_code": param.StatusCode,
			"latency":     param.Latency,
			"client_ip":   param.ClientIP,
			"user_agent":  param.Request.UserAgent(),
		}).Info("HTTP Request")

		return ""
	})
}

// Lambda serves a lambda handler from gin. The request is converted the same
// way API Gateway events are, and the envelope is written back verbatim.
func Lambda(h lambda.HandlerFunc, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := make(map[string]string, len(c.Params))
		for _, p := range c.Params {
			params[p.Key] = p.Value
		}

		req, err := lambda.FromHTTP(c.Request, params)
		if err != nil {
			env := response.Fail("Failed to read request body")
			c.Data(env.StatusCode, env.Headers[response.HeaderContentType], []byte(env.Body))
			return
		}

		env := lambda.Invoke(c.Request.Context(), h, req, log)
		for name, value := range env.Headers {
			c.Header(name, value)
		}
		c.Data(env.StatusCode, env.Headers[response.HeaderContentType], []byte(env.Body))
	}
}
