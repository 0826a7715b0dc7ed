package config

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Region       string
}

// DeploymentMode returns "serverless" inside Lambda and "server" otherwise
func (s ServerlessConfig) DeploymentMode() string {
	if s.IsLambda {
		return "serverless"
	}
	return "server"
}
