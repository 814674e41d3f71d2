package weatherapi

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"aeris-weather/models"
	"aeris-weather/models/forecast"
	"aeris-weather/resources"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastApiClientMock_FetchForecast_Success(t *testing.T) {
	// Arrange
	client := NewForecastApiClientMock()
	expected, err := resources.ForecastResponse()
	require.NoError(t, err)

	// Act
	response, err := client.FetchForecast(context.Background(), models.ForecastRequest{Query: "anywhere"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []byte(expected), []byte(response), "Responses dont match")
}

func TestForecastApiClientMock_FetchForecast_ValidatesInput(t *testing.T) {
	client := NewForecastApiClientMock()

	_, err := client.FetchForecast(context.Background(), models.ForecastRequest{Query: ""})

	assert.True(t, models.IsKind(err, models.InvalidArgument))
}

func TestForecastApiClientMock_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oslo.json")
	content := `{"location":{"name":"Oslo"},"forecast":{"forecastday":[]}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	response, err := NewForecastApiClientMockFromFile(path).FetchForecast(context.Background(), models.ForecastRequest{Query: "Oslo"})

	require.NoError(t, err)
	assert.Equal(t, content, string(response))
}

func TestForecastApiClientMock_FromMissingFile(t *testing.T) {
	client := NewForecastApiClientMockFromFile(filepath.Join(t.TempDir(), "missing.json"))

	_, err := client.FetchForecast(context.Background(), models.ForecastRequest{Query: "Oslo"})

	assert.True(t, models.IsKind(err, models.TransportError))
}

func TestForecastApiClientMock_TrimsToRequestedDays(t *testing.T) {
	client := NewForecastApiClientMock()

	response, err := client.FetchForecast(context.Background(), models.ForecastRequest{Query: "Lahore", Days: models.Days(1)})
	require.NoError(t, err)

	f, err := forecast.Decode(response)
	require.NoError(t, err)
	require.Len(t, f.Days(), 1)
	assert.Equal(t, "2025-06-01", f.Days()[0].Date)
	assert.Equal(t, "Lahore", f.Location.Name)
	assert.Equal(t, 1000, f.Current.Condition.Code)
}

func TestForecastApiClientMock_LongerHorizonServesWholeRecording(t *testing.T) {
	client := NewForecastApiClientMock()
	expected, err := resources.ForecastResponse()
	require.NoError(t, err)

	response, err := client.FetchForecast(context.Background(), models.ForecastRequest{Query: "Lahore", Days: models.Days(7)})

	require.NoError(t, err)
	assert.Equal(t, []byte(expected), []byte(response))
}
