package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ClientError
		want string
	}{
		{"invalid argument", NewInvalidArgument("Query parameter is required"), "InvalidArgument: Query parameter is required"},
		{"provider with status", NewProviderError("No matching location found.", 404), "ProviderError (status 404): No matching location found."},
		{"configuration", NewConfigurationError("Missing API configuration"), "ConfigurationError: Missing API configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsKind_ThroughWrapping(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("fetch forecast: %w", NewTransportError(cause.Error(), cause))

	assert.True(t, IsKind(err, TransportError))
	assert.False(t, IsKind(err, ProviderError))
	assert.ErrorIs(t, err, cause)

	ce, ok := AsClientError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, ce.HTTPStatus)
}

func TestIsKind_PlainError(t *testing.T) {
	assert.False(t, IsKind(errors.New("boom"), TransportError))
	assert.False(t, IsKind(nil, TransportError))
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "SchemaError", SchemaError.String())
	assert.Equal(t, "ErrorKind(42)", ErrorKind(42).String())
}
