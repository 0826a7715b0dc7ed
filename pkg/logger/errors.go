package logger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ConfigurationError reports a missing or invalid logger setting.
type ConfigurationError struct {
	Field   string // Config field that failed validation
	Value   string // Offending value, empty when the setting is missing
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// IsConfigurationError returns true if err is or wraps a ConfigurationError
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

func errNoStage() *ConfigurationError {
	return &ConfigurationError{
		Field:   "Stage",
		Message: "No stage specified (stage or STAGE)",
	}
}

func errNoLogLevel() *ConfigurationError {
	return &ConfigurationError{
		Field:   "LogLevel",
		Message: "No log level specified (logLevel or LOG_LEVEL)",
	}
}

func errInvalidLogLevel(value string) *ConfigurationError {
	return &ConfigurationError{
		Field:   "LogLevel",
		Value:   value,
		Message: fmt.Sprintf("Invalid log level: '%s'. Accepted values are: %s", value, strings.Join(levelNames, ", ")),
	}
}

func errNoStackName() *ConfigurationError {
	return &ConfigurationError{
		Field:   "StackName",
		Message: "No stack name specified (stackName or STACK_NAME)",
	}
}

// translateValidation maps the first validation failure onto a ConfigurationError.
// Fields are reported in declaration order, so stage problems come first.
func translateValidation(err error, cfg Config) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return fmt.Errorf("failed to validate logger configuration: %w", err)
	}

	fieldErr := validationErrs[0]
	switch fieldErr.Field() {
	case "Stage":
		return errNoStage()
	case "LogLevel":
		if fieldErr.Tag() == "required" {
			return errNoLogLevel()
		}
		return errInvalidLogLevel(cfg.LogLevel)
	case "StackName":
		return errNoStackName()
	default:
		return fmt.Errorf("invalid logger configuration: %w", err)
	}
}
