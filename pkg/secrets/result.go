package secrets

import (
	"encoding/json"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// Result is the outcome of GetSecret: either a parsed value or a failure.
type Result struct {
	Value any
	Err   error
}

// OK reports whether the secret was fetched and parsed.
func (r Result) OK() bool {
	return r.Err == nil
}

// Unwrap returns the value and the error in the usual Go form.
func (r Result) Unwrap() (any, error) {
	return r.Value, r.Err
}

// Decode converts the parsed value into v, typically a pointer to a struct.
func (r Result) Decode(v any) error {
	if r.Err != nil {
		return r.Err
	}
	if v == nil {
		return errors.New("decode target is nil")
	}
	raw, err := json.Marshal(r.Value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// PutResult is the outcome of PutSecret: the store's acknowledgment or a failure.
type PutResult struct {
	Output *secretsmanager.PutSecretValueOutput
	Err    error
}

// OK reports whether the store acknowledged the write.
func (r PutResult) OK() bool {
	return r.Err == nil
}

// Unwrap returns the acknowledgment and the error in the usual Go form.
func (r PutResult) Unwrap() (*secretsmanager.PutSecretValueOutput, error) {
	return r.Output, r.Err
}
