package response

import (
	"encoding/json"
	"fmt"
	"reflect"

	"lambda-kit/internal/jsonutil"
)

// Kind tells how a Message is rendered in a failure body.
type Kind int

const (
	// KindNone is an absent message.
	KindNone Kind = iota
	// KindText is a plain string, used as is.
	KindText
	// KindError is an error, rendered with its Error method.
	KindError
	// KindObject is structured data, rendered as encoded JSON.
	KindObject
	// KindOther is any other value, rendered with fmt.
	KindOther
)

// Message is the payload of a response, classified once when it is built.
type Message struct {
	kind  Kind
	value any
}

// None returns an absent message.
func None() Message { return Message{kind: KindNone} }

// Text wraps a string message.
func Text(s string) Message { return Message{kind: KindText, value: s} }

// Err wraps an error message. A nil error, typed or not, is an absent message.
func Err(err error) Message {
	if err == nil || isNilPointer(err) {
		return None()
	}
	return Message{kind: KindError, value: err}
}

// Object wraps structured data.
func Object(v any) Message { return Message{kind: KindObject, value: v} }

// MessageOf classifies an arbitrary value. Messages pass through unchanged.
// Nil pointers are absent messages whatever they point to.
func MessageOf(v any) Message {
	if isNilPointer(v) {
		return None()
	}

	switch m := v.(type) {
	case nil:
		return None()
	case Message:
		return m
	case string:
		return Text(m)
	case error:
		return Err(m)
	case json.Marshaler:
		return Object(m)
	}

	rv := reflect.ValueOf(v)
	kind := rv.Kind()
	if kind == reflect.Pointer {
		kind = rv.Elem().Kind()
	}
	switch kind {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return Object(v)
	default:
		return Message{kind: KindOther, value: v}
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Kind returns the message kind.
func (m Message) Kind() Kind { return m.kind }

// Value returns the wrapped value, nil for an absent message.
func (m Message) Value() any { return m.value }

// encode renders the message as a success body. An absent message has no body.
func (m Message) encode() (string, error) {
	if m.kind == KindNone {
		return "", nil
	}
	b, err := jsonutil.Marshal(m.value)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// describe renders the message as the error text of a failure body.
// The bool is false for an absent message.
func (m Message) describe() (string, bool) {
	switch m.kind {
	case KindNone:
		return "", false
	case KindText:
		return m.value.(string), true
	case KindError:
		return m.value.(error).Error(), true
	case KindObject:
		b, err := jsonutil.Marshal(m.value)
		if err != nil {
			return err.Error(), true
		}
		return string(b), true
	default:
		return fmt.Sprint(m.value), true
	}
}
