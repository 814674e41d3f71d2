package services

import (
	"context"
	"errors"

	"aeris-weather/api/geolocation"
	"aeris-weather/logger"
	"aeris-weather/util"
)

const MSG_LOCATION_FAILED = "Failed to get location"

// LocationError is the user-facing failure of a location lookup.
type LocationError struct {
	Message     string
	Unsupported bool
	Err         error
}

func (e *LocationError) Error() string {
	return e.Message
}

func (e *LocationError) Unwrap() error {
	return e.Err
}

// LocationService turns the caller's position into a forecast query.
type LocationService struct {
	locator geolocation.Locator
}

// NewLocationService accepts a nil locator for environments without geolocation.
func NewLocationService(locator geolocation.Locator) *LocationService {
	return &LocationService{locator: locator}
}

// CurrentQuery returns "<lat>,<lon>" for the caller identified by hint.
func (ls *LocationService) CurrentQuery(ctx context.Context, hint string) (string, error) {
	if ls.locator == nil {
		return "", &LocationError{
			Message:     geolocation.ErrNotSupported.Error(),
			Unsupported: true,
			Err:         geolocation.ErrNotSupported,
		}
	}

	coords, err := ls.locator.Locate(ctx, hint)
	if err != nil {
		log := logger.For("LocationService")
		log.Warn().Err(err).Str("hint", hint).Msg("geolocation failed")
		if errors.Is(err, geolocation.ErrNotSupported) {
			return "", &LocationError{Message: err.Error(), Unsupported: true, Err: err}
		}

		message := util.CapitalizeFirst(err.Error())
		if message == "" {
			message = MSG_LOCATION_FAILED
		}
		return "", &LocationError{Message: message, Err: err}
	}

	return coords.Query(), nil
}
