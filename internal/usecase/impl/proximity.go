package impl

import (
	"fmt"
	"math"

	domainerrors "bumpr/internal/domain/errors"
	"bumpr/internal/domain/geo"

	"github.com/pkg/errors"
)

// resolveRadius applies the default for an omitted radius and rejects values outside [0, maxRadius].
// Zero is allowed and simply matches nothing.
func resolveRadius(radius *float64, defaultRadius, maxRadius float64) (float64, error) {
	if radius == nil {
		return defaultRadius, nil
	}

	r := *radius
	if math.IsNaN(r) || r < 0 || r > maxRadius {
		return 0, errors.WithStack(domainerrors.ErrInvalidRadius.WithDetails(
			fmt.Sprintf("radius must be between 0 and %.0f meters", maxRadius)))
	}

	return r, nil
}

func validateCoordinate(c geo.Coordinate) error {
	if !c.IsValid() {
		return errors.WithStack(domainerrors.ErrInvalidCoordinate)
	}

	return nil
}
