package correction

import "errors"

var (
	// ErrInvalidMultiplier is returned when an explicit Green multiplier is
	// not a finite scalar.
	ErrInvalidMultiplier = errors.New("correction: Green multiplier must be a finite scalar")

	// ErrElementTypeMismatch is returned when the three operator handles do
	// not share one scalar element type, or when a block element type is not
	// square.
	ErrElementTypeMismatch = errors.New("correction: operator element types disagree")
)
