// Package converter provides the conversion engine: it resolves a category in
// the unit registry, converts a raw input between two of its units, and
// formats the result for display.
package converter

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/unitconv/internal/domain/numfmt"
	"github.com/phrazzld/unitconv/internal/domain/units"
)

// Service defines the operations of the conversion engine. Implementations
// hold no mutable state and are safe for concurrent use.
type Service interface {
	// ListCategories returns the category names in display order.
	ListCategories() []string

	// UnitsFor returns the unit names of a category in display order.
	UnitsFor(category string) ([]string, error)

	// DefaultPair returns the conventional initial source and target units
	// of a category: its first two units.
	DefaultPair(category string) (from, to string, err error)

	// Convert converts rawInput from one unit to another and returns the
	// display string. Input without a numeric prefix yields "" and no error.
	Convert(category, rawInput, from, to string) (string, error)
}

// Request is a single conversion request.
type Request struct {
	Category string
	Input    string
	From     string
	To       string
}

// Swap returns the request with source and target units exchanged.
func (r Request) Swap() Request {
	r.From, r.To = r.To, r.From
	return r
}

// Do runs the request against s.
func (r Request) Do(s Service) (string, error) {
	return s.Convert(r.Category, r.Input, r.From, r.To)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	registry *units.Registry
	logger   *slog.Logger
}

// NewService creates a conversion engine over the given registry.
func NewService(registry *units.Registry, logger *slog.Logger) (Service, error) {
	if registry == nil {
		return nil, fmt.Errorf("%w: registry cannot be nil", ErrInvalidDependency)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &defaultService{
		registry: registry,
		logger:   logger.With(slog.String("component", "converter")),
	}, nil
}

// ListCategories implements Service.
func (s *defaultService) ListCategories() []string {
	return s.registry.Categories()
}

// UnitsFor implements Service.
func (s *defaultService) UnitsFor(category string) ([]string, error) {
	unitNames, err := s.registry.UnitsOf(category)
	if err != nil {
		s.logger.Warn("units requested for unknown category", "category", category)
		return nil, err
	}
	return unitNames, nil
}

// DefaultPair implements Service.
func (s *defaultService) DefaultPair(category string) (string, string, error) {
	unitNames, err := s.UnitsFor(category)
	if err != nil {
		return "", "", err
	}
	// The registry guarantees at least two units per category.
	return unitNames[0], unitNames[1], nil
}

// Convert implements Service.
func (s *defaultService) Convert(category, rawInput, from, to string) (string, error) {
	c, err := s.registry.Lookup(category)
	if err != nil {
		s.logger.Warn("conversion requested for unknown category", "category", category)
		return "", err
	}

	for _, unit := range []string{from, to} {
		if !c.Has(unit) {
			s.logger.Warn("conversion requested with foreign unit",
				"category", category,
				"unit", unit)
			return "", fmt.Errorf("%w: %q is not a %s unit", units.ErrUnitNotInCategory, unit, category)
		}
	}

	value, ok := numfmt.Parse(rawInput)
	if !ok {
		return "", nil
	}

	result := convertValue(c.Strategy(), value, from, to)
	display := numfmt.Format(result)

	s.logger.Debug("converted value",
		"category", category,
		"from", from,
		"to", to,
		"result", display)

	return display, nil
}

// convertValue applies the category's strategy. Units must already be
// validated as members of the category.
func convertValue(strategy units.Strategy, value float64, from, to string) float64 {
	if from == to {
		return value
	}

	switch st := strategy.(type) {
	case *units.Linear:
		return st.Convert(value, from, to)
	case *units.Affine:
		return st.Convert(value, from, to)
	default:
		// Strategy is sealed, so this only triggers if a new kind is added to
		// the units package without a case here.
		panic(fmt.Sprintf("converter: unhandled strategy %T", strategy))
	}
}
