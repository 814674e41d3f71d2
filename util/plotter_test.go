package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemperatureChart(t *testing.T) {
	var buf bytes.Buffer

	err := RenderTemperatureChart(&buf, decodeFixture(t))

	require.NoError(t, err)
	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "Lahore forecast")
	assert.Contains(t, html, "2025-06-03")
	assert.Contains(t, html, "41.2")
}
