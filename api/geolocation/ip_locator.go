package geolocation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"aeris-weather/api"
	"aeris-weather/metrics"
)

// IPLocator resolves coordinates from an IP address using an ip-api.com
// compatible JSON endpoint.
type IPLocator struct {
	*api.HTTPClient
}

type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func NewIPLocator(httpClient *api.HTTPClient) *IPLocator {
	return &IPLocator{HTTPClient: httpClient}
}

// Locate looks up hint. An empty hint lets the endpoint use the address the
// request comes from.
func (l *IPLocator) Locate(ctx context.Context, hint string) (Coordinates, error) {
	endpoint := "/"
	if hint != "" {
		endpoint += url.PathEscape(hint)
	}

	params := url.Values{}
	params.Set("fields", "status,message,lat,lon")

	var resp ipLookupResponse
	if err := l.Request(ctx, http.MethodGet, endpoint, params, nil, nil, &resp); err != nil {
		metrics.GeolocationLookups.WithLabelValues("error").Inc()
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			return Coordinates{}, fmt.Errorf("geolocation lookup failed with status code %d", statusErr.StatusCode)
		}
		return Coordinates{}, fmt.Errorf("geolocation lookup failed: %w", err)
	}

	if resp.Status != "success" {
		metrics.GeolocationLookups.WithLabelValues("fail").Inc()
		if resp.Message == "" {
			return Coordinates{}, errors.New("unable to determine location")
		}
		return Coordinates{}, errors.New(resp.Message)
	}

	metrics.GeolocationLookups.WithLabelValues("ok").Inc()
	return Coordinates{Lat: resp.Lat, Lon: resp.Lon}, nil
}

var _ Locator = (*IPLocator)(nil)
