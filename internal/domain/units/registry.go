package units

import (
	"fmt"
	"math"
	"slices"
)

// UnitDef describes one unit in a catalog definition. Factor is only
// meaningful for units of linear categories.
type UnitDef struct {
	Name   string
	Factor float64
}

// CategoryDef describes one category in a catalog definition.
type CategoryDef struct {
	Name     string
	Strategy StrategyKind
	// Family names the affine routines used by an affine category.
	Family string
	Units  []UnitDef
}

// Category is a named group of commensurable units.
type Category struct {
	name     string
	units    []string
	strategy Strategy
}

// Name returns the category name.
func (c *Category) Name() string { return c.name }

// Units returns the member unit names in display order. The first two are the
// conventional default source and target units.
func (c *Category) Units() []string { return slices.Clone(c.units) }

// Strategy returns the conversion strategy of the category.
func (c *Category) Strategy() Strategy { return c.strategy }

// Has reports whether unit is a member of the category.
func (c *Category) Has(unit string) bool {
	return slices.Contains(c.units, unit)
}

// Factor returns the scale factor of unit relative to the base unit. It
// reports false for units outside the category and for every unit of a
// category that is not linear.
func (c *Category) Factor(unit string) (float64, bool) {
	linear, ok := c.strategy.(*Linear)
	if !ok {
		return 0, false
	}
	return linear.Factor(unit)
}

// Registry is the immutable catalog of categories. It is never modified after
// NewRegistry returns, so it is safe for concurrent use.
type Registry struct {
	order      []string
	categories map[string]*Category
}

// NewRegistry builds a registry from catalog definitions, preserving their
// order. It returns an error wrapping ErrInvalidCatalog if any definition
// breaks a catalog invariant.
func NewRegistry(defs []CategoryDef) (*Registry, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no categories defined", ErrInvalidCatalog)
	}

	r := &Registry{
		order:      make([]string, 0, len(defs)),
		categories: make(map[string]*Category, len(defs)),
	}

	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("%w: category with empty name", ErrInvalidCatalog)
		}
		if _, exists := r.categories[def.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, def.Name)
		}

		category, err := newCategory(def)
		if err != nil {
			return nil, err
		}

		r.order = append(r.order, def.Name)
		r.categories[def.Name] = category
	}

	return r, nil
}

// newCategory validates a single category definition and builds its strategy.
func newCategory(def CategoryDef) (*Category, error) {
	if len(def.Units) < 2 {
		return nil, fmt.Errorf("%w: category %q needs at least two units, has %d",
			ErrInvalidCatalog, def.Name, len(def.Units))
	}

	names := make([]string, 0, len(def.Units))
	for _, u := range def.Units {
		if u.Name == "" {
			return nil, fmt.Errorf("%w: category %q has a unit with empty name", ErrInvalidCatalog, def.Name)
		}
		if slices.Contains(names, u.Name) {
			return nil, fmt.Errorf("%w: category %q lists unit %q twice", ErrInvalidCatalog, def.Name, u.Name)
		}
		names = append(names, u.Name)
	}

	var strategy Strategy
	switch def.Strategy {
	case StrategyLinear:
		factors := make(map[string]float64, len(def.Units))
		for _, u := range def.Units {
			if u.Factor <= 0 || math.IsInf(u.Factor, 0) || math.IsNaN(u.Factor) {
				return nil, fmt.Errorf("%w: unit %q in category %q has invalid factor %v",
					ErrInvalidCatalog, u.Name, def.Name, u.Factor)
			}
			factors[u.Name] = u.Factor
		}
		strategy = &Linear{factors: factors}

	case StrategyAffine:
		family, ok := affineFamilies[def.Family]
		if !ok {
			return nil, fmt.Errorf("%w: category %q references unknown affine family %q",
				ErrInvalidCatalog, def.Name, def.Family)
		}
		for _, name := range names {
			if !family.Supports(name) {
				return nil, fmt.Errorf("%w: affine family %q cannot convert unit %q of category %q",
					ErrInvalidCatalog, def.Family, name, def.Name)
			}
		}
		strategy = family

	default:
		return nil, fmt.Errorf("%w: category %q has unknown strategy %q",
			ErrInvalidCatalog, def.Name, def.Strategy)
	}

	return &Category{
		name:     def.Name,
		units:    names,
		strategy: strategy,
	}, nil
}

// Categories returns the category names in catalog order.
func (r *Registry) Categories() []string {
	return slices.Clone(r.order)
}

// Lookup returns the named category. It returns an error wrapping
// ErrUnknownCategory if no such category exists.
func (r *Registry) Lookup(name string) (*Category, error) {
	c, ok := r.categories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return c, nil
}

// UnitsOf returns the unit names of the named category in display order.
func (r *Registry) UnitsOf(name string) ([]string, error) {
	c, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return c.Units(), nil
}
