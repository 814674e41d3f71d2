package geolocation

import (
	"context"
	"errors"
	"strconv"
)

// ErrNotSupported is returned when no geolocation capability is available.
var ErrNotSupported = errors.New("Geolocation is not supported.")

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Query formats the coordinates as the "lat,lon" location query the
// forecast provider accepts.
func (c Coordinates) Query() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lon, 'f', -1, 64)
}

// Locator resolves the position of the caller. hint is the caller's network
// address and may be empty when the adapter can infer it on its own.
type Locator interface {
	Locate(ctx context.Context, hint string) (Coordinates, error)
}

// FixedLocator always answers with Coords, or with Err when it is set.
type FixedLocator struct {
	Coords Coordinates
	Err    error
}

func NewFixedLocator(lat, lon float64) *FixedLocator {
	return &FixedLocator{Coords: Coordinates{Lat: lat, Lon: lon}}
}

func NewFailingLocator(err error) *FixedLocator {
	return &FixedLocator{Err: err}
}

func (l *FixedLocator) Locate(ctx context.Context, hint string) (Coordinates, error) {
	if l.Err != nil {
		return Coordinates{}, l.Err
	}
	return l.Coords, nil
}

var _ Locator = (*FixedLocator)(nil)
