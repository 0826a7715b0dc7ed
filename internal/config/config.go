package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultSecretsRegion is the region used for Secrets Manager when none is configured
const DefaultSecretsRegion = "us-west-2"

// Config holds all configuration for the helpers and the binaries that host them
type Config struct {
	Stage      string
	LogLevel   string
	StackName  string
	Port       string
	Secrets    SecretsConfig
	Serverless ServerlessConfig
}

// SecretsConfig holds Secrets Manager client configuration
type SecretsConfig struct {
	Region   string
	Endpoint string // optional, e.g. a localstack URL
}

// envBindings maps each config key to the environment variables consulted for it.
// Earlier names win; the upper-case name is the fallback.
var envBindings = map[string][]string{
	"stage":            {"stage", "STAGE"},
	"log_level":        {"logLevel", "LOG_LEVEL"},
	"stack_name":       {"stackName", "STACK_NAME"},
	"port":             {"PORT"},
	"secrets_region":   {"SECRETS_REGION"},
	"secrets_endpoint": {"SECRETS_ENDPOINT"},
	"function_name":    {"AWS_LAMBDA_FUNCTION_NAME"},
	"aws_region":       {"AWS_REGION"},
}

// Load loads configuration from environment variables and an optional .env file.
// Values are copied out of the environment once; nothing downstream reads it again.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	for key, names := range envBindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return nil, err
		}
	}
	v.SetDefault("port", "8081")
	v.SetDefault("secrets_region", DefaultSecretsRegion)

	functionName := v.GetString("function_name")

	config := &Config{
		Stage:     v.GetString("stage"),
		LogLevel:  v.GetString("log_level"),
		StackName: v.GetString("stack_name"),
		Port:      v.GetString("port"),
		Secrets: SecretsConfig{
			Region:   v.GetString("secrets_region"),
			Endpoint: v.GetString("secrets_endpoint"),
		},
		Serverless: ServerlessConfig{
			IsLambda:     functionName != "",
			FunctionName: functionName,
			Region:       v.GetString("aws_region"),
		},
	}

	return config, nil
}
