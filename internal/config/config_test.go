package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, names := range envBindings {
		for _, name := range names {
			t.Setenv(name, "")
		}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.Stage)
				assert.Empty(t, cfg.LogLevel)
				assert.Empty(t, cfg.StackName)
				assert.Equal(t, "8081", cfg.Port)
				assert.Equal(t, DefaultSecretsRegion, cfg.Secrets.Region)
				assert.False(t, cfg.Serverless.IsLambda)
				assert.Equal(t, "server", cfg.Serverless.DeploymentMode())
			},
		},
		{
			name: "upper-case names",
			envVars: map[string]string{
				"STAGE":      "dev",
				"LOG_LEVEL":  "info",
				"STACK_NAME": "orders",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "dev", cfg.Stage)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "orders", cfg.StackName)
			},
		},
		{
			name: "lower-case names win over upper-case",
			envVars: map[string]string{
				"stage":      "prod",
				"STAGE":      "dev",
				"logLevel":   "debug",
				"LOG_LEVEL":  "error",
				"stackName":  "billing",
				"STACK_NAME": "orders",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "prod", cfg.Stage)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "billing", cfg.StackName)
			},
		},
		{
			name: "lambda environment",
			envVars: map[string]string{
				"AWS_LAMBDA_FUNCTION_NAME": "token-status",
				"AWS_REGION":               "eu-west-1",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.Serverless.IsLambda)
				assert.Equal(t, "token-status", cfg.Serverless.FunctionName)
				assert.Equal(t, "serverless", cfg.Serverless.DeploymentMode())
				assert.Equal(t, "eu-west-1", cfg.Serverless.Region)
				assert.Equal(t, DefaultSecretsRegion, cfg.Secrets.Region, "the function region does not move the secrets region")
			},
		},
		{
			name: "explicit secrets settings",
			envVars: map[string]string{
				"AWS_REGION":       "eu-west-1",
				"SECRETS_REGION":   "ap-southeast-2",
				"SECRETS_ENDPOINT": "http://localhost:4566",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "ap-southeast-2", cfg.Secrets.Region)
				assert.Equal(t, "http://localhost:4566", cfg.Secrets.Endpoint)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
