package units

import "errors"

// Registry errors. Callers check for them with errors.Is.
var (
	// ErrUnknownCategory is returned when a category name is not in the catalog.
	// Category names are expected to come from Registry.Categories, so this
	// indicates stale or forged caller state.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnitNotInCategory is returned when a unit name is not a member of the
	// category it was used with.
	ErrUnitNotInCategory = errors.New("unit not in category")

	// ErrInvalidCatalog is returned when a catalog definition violates one of
	// the registry invariants.
	ErrInvalidCatalog = errors.New("invalid unit catalog")
)
