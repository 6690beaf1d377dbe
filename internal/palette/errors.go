package palette

import (
	"errors"

	"github.com/jsvensson/colorsift/internal/color"
)

// Sentinel errors for palette operations.
var (
	// ErrInvalidColor is returned when a record's color does not parse.
	ErrInvalidColor = color.ErrInvalidColor

	// ErrInvalidReference is returned when a record index does not exist
	// in the collection, including NoSelection.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrNoNeighbor is returned when shifting a collection with a single record.
	ErrNoNeighbor = errors.New("no neighbor")

	// ErrInvalidMode is returned for an unknown sort mode name.
	ErrInvalidMode = errors.New("invalid sort mode")
)
