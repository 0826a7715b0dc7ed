package secrets

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySecret is returned when a secret has no string value (binary secrets included).
	ErrEmptySecret = errors.New("secret has no string value")
	// ErrParse is returned when a secret's string value is not valid JSON.
	ErrParse = errors.New("secret value is not valid JSON")
	// ErrInvalidName is returned for an empty secret name.
	ErrInvalidName = errors.New("invalid secret name")
)

// RemoteStoreError represents a failed Secrets Manager operation
type RemoteStoreError struct {
	Op   string // Operation that failed ("GetSecret" or "PutSecret")
	Name string // Secret name involved in the operation
	Err  error  // Underlying error
}

func (e *RemoteStoreError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("secrets %s operation failed for '%s': %v", e.Op, e.Name, e.Err)
	}
	return fmt.Sprintf("secrets %s operation failed: %v", e.Op, e.Err)
}

func (e *RemoteStoreError) Unwrap() error {
	return e.Err
}

// NewRemoteStoreError creates a new RemoteStoreError
func NewRemoteStoreError(op, name string, err error) *RemoteStoreError {
	return &RemoteStoreError{
		Op:   op,
		Name: name,
		Err:  err,
	}
}

// IsParseError returns true if the error indicates an unparsable secret value
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}
