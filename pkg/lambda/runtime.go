package lambda

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"lambda-kit/internal/config"
	"lambda-kit/pkg/logger"
	"lambda-kit/pkg/secrets"
)

// Runtime holds what a function container shares across warm invocations:
// the configuration and a lazily created secrets accessor.
type Runtime struct {
	config     *config.Config
	logBackend *logrus.Logger

	secretsClient secrets.Client
	secretsOnce   sync.Once
	secrets       *secrets.Accessor
	secretsErr    error
}

// RuntimeOption configures a Runtime
type RuntimeOption func(*Runtime)

// WithLogBackend routes every logger created by the runtime through backend
func WithLogBackend(backend *logrus.Logger) RuntimeOption {
	return func(rt *Runtime) {
		rt.logBackend = backend
	}
}

// WithSecretsClient uses client instead of building one from the configuration
func WithSecretsClient(client secrets.Client) RuntimeOption {
	return func(rt *Runtime) {
		rt.secretsClient = client
	}
}

// NewRuntime creates a runtime for cfg
func NewRuntime(cfg *config.Config, opts ...RuntimeOption) *Runtime {
	rt := &Runtime{config: cfg}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Config returns the runtime configuration
func (rt *Runtime) Config() *config.Config {
	return rt.config
}

// NewLogger builds a fresh logger for one invocation. It fails when the
// stage, log level or stack name settings are missing or invalid.
func (rt *Runtime) NewLogger() (*logger.Logger, error) {
	var opts []logger.Option
	if rt.logBackend != nil {
		opts = append(opts, logger.WithBackend(rt.logBackend))
	}
	return logger.New(logger.ConfigFrom(rt.config), opts...)
}

// Secrets returns the shared secrets accessor, creating it on first use
func (rt *Runtime) Secrets(ctx context.Context) (*secrets.Accessor, error) {
	rt.secretsOnce.Do(func() {
		var opts []secrets.Option
		if rt.logBackend != nil {
			opts = append(opts, secrets.WithLogger(rt.logBackend))
		}

		if rt.secretsClient != nil {
			rt.secrets = secrets.New(rt.secretsClient, opts...)
			return
		}
		rt.secrets, rt.secretsErr = secrets.NewFromConfig(ctx, rt.config.Secrets, opts...)
	})
	return rt.secrets, rt.secretsErr
}
