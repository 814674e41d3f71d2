package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the forecast data access layer can surface.
type ErrorKind int

const (
	InvalidArgument ErrorKind = iota + 1
	ConfigurationError
	TransportError
	ProviderError
	SchemaError
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case ConfigurationError:
		return "ConfigurationError"
	case TransportError:
		return "TransportError"
	case ProviderError:
		return "ProviderError"
	case SchemaError:
		return "SchemaError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ClientError is the single failure signal handed to callers. HTTPStatus is
// zero unless the provider answered with a non-success status.
type ClientError struct {
	Kind       ErrorKind
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ClientError) Error() string {
	if e.HTTPStatus != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

func NewInvalidArgument(message string) *ClientError {
	return &ClientError{Kind: InvalidArgument, Message: message}
}

func NewConfigurationError(message string) *ClientError {
	return &ClientError{Kind: ConfigurationError, Message: message}
}

func NewTransportError(message string, err error) *ClientError {
	return &ClientError{Kind: TransportError, Message: message, Err: err}
}

func NewProviderError(message string, status int) *ClientError {
	return &ClientError{Kind: ProviderError, Message: message, HTTPStatus: status}
}

func NewSchemaError(message string, err error) *ClientError {
	return &ClientError{Kind: SchemaError, Message: message, Err: err}
}

// AsClientError unwraps err to a *ClientError if there is one in its chain.
func AsClientError(err error) (*ClientError, bool) {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsKind reports whether err carries a ClientError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	ce, ok := AsClientError(err)
	return ok && ce.Kind == kind
}
