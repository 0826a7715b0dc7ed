// Package secrets reads and writes named secrets in AWS Secrets Manager.
//
// Failures never panic and are never returned as a bare error: every call
// yields a Result (or PutResult) that callers inspect with OK, after the
// failure has been logged.
package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/sirupsen/logrus"

	"lambda-kit/internal/config"
	"lambda-kit/internal/jsonutil"
)

// Client is the subset of the Secrets Manager API used by Accessor
type Client interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
	PutSecretValue(ctx context.Context, params *secretsmanager.PutSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.PutSecretValueOutput, error)
}

// Accessor fetches and stores secrets. It keeps no cache; every call is a
// single round trip to the store.
type Accessor struct {
	client Client
	log    logrus.FieldLogger
}

// Option configures an Accessor.
type Option func(*Accessor)

// WithLogger sets the logger failures are reported to.
func WithLogger(log logrus.FieldLogger) Option {
	return func(a *Accessor) {
		a.log = log
	}
}

// New creates an Accessor over an existing client.
func New(client Client, opts ...Option) *Accessor {
	a := &Accessor{
		client: client,
		log:    logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewFromConfig loads the AWS configuration for cfg and creates an Accessor
// backed by a Secrets Manager client.
func NewFromConfig(ctx context.Context, cfg config.SecretsConfig, opts ...Option) (*Accessor, error) {
	region := cfg.Region
	if region == "" {
		region = config.DefaultSecretsRegion
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := secretsmanager.NewFromConfig(awsCfg, func(o *secretsmanager.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return New(client, opts...), nil
}

// GetSecret fetches the named secret and parses its string value as JSON.
func (a *Accessor) GetSecret(ctx context.Context, name string) Result {
	const op = "GetSecret"

	if name == "" {
		return Result{Err: a.failure(op, name, ErrInvalidName)}
	}

	out, err := a.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return Result{Err: a.failure(op, name, err)}
	}
	if out == nil || out.SecretString == nil {
		return Result{Err: a.failure(op, name, ErrEmptySecret)}
	}

	var value any
	if err := json.Unmarshal([]byte(*out.SecretString), &value); err != nil {
		return Result{Err: a.failure(op, name, fmt.Errorf("%w: %v", ErrParse, err))}
	}

	return Result{Value: value}
}

// PutSecret stores value as the new string value of the named secret.
func (a *Accessor) PutSecret(ctx context.Context, name, value string) PutResult {
	const op = "PutSecret"

	if name == "" {
		return PutResult{Err: a.failure(op, name, ErrInvalidName)}
	}

	out, err := a.client.PutSecretValue(ctx, &secretsmanager.PutSecretValueInput{
		SecretId:     aws.String(name),
		SecretString: aws.String(value),
	})
	if err != nil {
		return PutResult{Err: a.failure(op, name, err)}
	}

	return PutResult{Output: out}
}

// PutSecretJSON encodes value as JSON and stores it under name.
func (a *Accessor) PutSecretJSON(ctx context.Context, name string, value any) PutResult {
	encoded, err := jsonutil.Marshal(value)
	if err != nil {
		return PutResult{Err: a.failure("PutSecret", name, err)}
	}
	return a.PutSecret(ctx, name, string(encoded))
}

func (a *Accessor) failure(op, name string, err error) error {
	storeErr := NewRemoteStoreError(op, name, err)
	a.log.WithFields(logrus.Fields{
		"operation":   op,
		"secret_name": name,
	}).WithError(err).Error("Secrets Manager operation failed")
	return storeErr
}
