package units

// StrategyKind names how the units of a category relate to each other.
type StrategyKind string

// Valid strategy kinds
const (
	// StrategyLinear means any two units differ by a constant factor.
	StrategyLinear StrategyKind = "linear"

	// StrategyAffine means units differ by an offset and a scale, so
	// conversion goes through a canonical intermediate scale.
	StrategyAffine StrategyKind = "affine"
)

// IsValid reports whether k is a known strategy kind.
func (k StrategyKind) IsValid() bool {
	switch k {
	case StrategyLinear, StrategyAffine:
		return true
	default:
		return false
	}
}

// Strategy is the conversion strategy of a category. The concrete type is
// either *Linear or *Affine; consumers dispatch with a type switch.
type Strategy interface {
	Kind() StrategyKind
	sealed()
}

// Linear holds the scale factor of every unit of a category relative to the
// category's implicit base unit.
type Linear struct {
	factors map[string]float64
}

// Kind implements Strategy.
func (l *Linear) Kind() StrategyKind { return StrategyLinear }

func (l *Linear) sealed() {}

// Factor returns the number of base units in one unit of the given name.
func (l *Linear) Factor(unit string) (float64, bool) {
	f, ok := l.factors[unit]
	return f, ok
}

// Convert converts v from one unit to another. Both units must exist.
func (l *Linear) Convert(v float64, from, to string) float64 {
	return v * l.factors[from] / l.factors[to]
}

// AffineFunc maps a value on one scale to a value on another.
type AffineFunc func(float64) float64

// Affine converts between units through a canonical intermediate scale.
// Each unit supplies a function onto the canonical scale and one back.
type Affine struct {
	family        string
	canonical     string
	toCanonical   map[string]AffineFunc
	fromCanonical map[string]AffineFunc
}

// Kind implements Strategy.
func (a *Affine) Kind() StrategyKind { return StrategyAffine }

func (a *Affine) sealed() {}

// Family is the name the catalog uses to refer to this set of routines.
func (a *Affine) Family() string { return a.family }

// Canonical is the unit whose scale serves as the intermediate.
func (a *Affine) Canonical() string { return a.canonical }

// Supports reports whether the family can convert the named unit in both
// directions.
func (a *Affine) Supports(unit string) bool {
	_, to := a.toCanonical[unit]
	_, from := a.fromCanonical[unit]
	return to && from
}

// Convert converts v from one unit to another via the canonical scale.
// Both units must be supported.
func (a *Affine) Convert(v float64, from, to string) float64 {
	return a.fromCanonical[to](a.toCanonical[from](v))
}

// affineFamilies are the affine routines a catalog may reference by name.
var affineFamilies = map[string]*Affine{
	temperature.family: temperature,
}
