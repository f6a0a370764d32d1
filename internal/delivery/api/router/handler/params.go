package handler

import (
	"bumpr/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// nearbyQuery holds the shared lat/lng/radius query of the nearby endpoints.
type nearbyQuery struct {
	Observer geo.Coordinate
	Radius   *float64
}

func bindNearbyQuery(c echo.Context) (*nearbyQuery, error) {
	var lat, lng, radius float64
	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		Float64("radius", &radius).
		BindError()
	if err != nil {
		return nil, err
	}

	query := &nearbyQuery{Observer: geo.NewCoordinate(lat, lng)}
	if c.QueryParam("radius") != "" {
		query.Radius = &radius
	}

	return query, nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
