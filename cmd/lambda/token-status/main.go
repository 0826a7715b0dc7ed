package main

import (
	"lambda-kit/internal/config"
	"lambda-kit/internal/handlers"
	"lambda-kit/pkg/lambda"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

var handler lambda.APIGatewayHandler

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	runtime := lambda.NewRuntime(cfg)

	// Fail the cold start rather than every invocation
	if _, err := runtime.NewLogger(); err != nil {
		panic("Invalid logger configuration: " + err.Error())
	}

	handler = lambda.Adapt(handlers.NewTokenStatusHandler(runtime).Handle, logrus.StandardLogger())
}

func main() {
	awslambda.Start(handler)
}
