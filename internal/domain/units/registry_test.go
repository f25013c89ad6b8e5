package units

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()
	registry := Default()
	require.NotNil(t, registry)

	assert.Equal(t, []string{"Length", "Weight", "Temperature", "Volume"}, registry.Categories())

	tests := []struct {
		category string
		units    []string
		kind     StrategyKind
	}{
		{
			category: "Length",
			units:    []string{"Meters", "Kilometers", "Centimeters", "Millimeters", "Miles", "Yards", "Feet", "Inches"},
			kind:     StrategyLinear,
		},
		{
			category: "Weight",
			units:    []string{"Kilograms", "Grams", "Milligrams", "Pounds", "Ounces", "Tonnes", "Stones"},
			kind:     StrategyLinear,
		},
		{
			category: "Temperature",
			units:    []string{"Celsius", "Fahrenheit", "Kelvin"},
			kind:     StrategyAffine,
		},
		{
			category: "Volume",
			units: []string{
				"Liters", "Milliliters", "Gallons (US)", "Quarts", "Pints",
				"Cups", "Fluid Oz", "Tablespoons", "Teaspoons",
			},
			kind: StrategyLinear,
		},
	}

	for _, tc := range tests {
		t.Run(tc.category, func(t *testing.T) {
			category, err := registry.Lookup(tc.category)
			require.NoError(t, err)
			assert.Equal(t, tc.category, category.Name())
			assert.Equal(t, tc.units, category.Units())
			assert.Equal(t, tc.kind, category.Strategy().Kind())

			units, err := registry.UnitsOf(tc.category)
			require.NoError(t, err)
			assert.Equal(t, tc.units, units)
		})
	}
}

func TestDefaultCatalogFactors(t *testing.T) {
	t.Parallel()
	registry := Default()

	tests := []struct {
		category string
		unit     string
		factor   float64
	}{
		{"Length", "Meters", 1},
		{"Length", "Miles", 1609.344},
		{"Length", "Feet", 0.3048},
		{"Weight", "Milligrams", 0.000001},
		{"Weight", "Pounds", 0.453592},
		{"Weight", "Stones", 6.35029},
		{"Volume", "Gallons (US)", 3.78541},
		{"Volume", "Teaspoons", 0.00492892},
	}

	for _, tc := range tests {
		t.Run(tc.category+"/"+tc.unit, func(t *testing.T) {
			category, err := registry.Lookup(tc.category)
			require.NoError(t, err)
			factor, ok := category.Factor(tc.unit)
			require.True(t, ok)
			// Factors decoded from the catalog must be bit-identical to the literals.
			assert.Equal(t, tc.factor, factor)
		})
	}

	temperature, err := registry.Lookup("Temperature")
	require.NoError(t, err)
	_, ok := temperature.Factor(Celsius)
	assert.False(t, ok, "affine categories have no scale factors")
}

func TestDefaultReturnsSameRegistry(t *testing.T) {
	t.Parallel()
	assert.Same(t, Default(), Default())
}

func TestLookupUnknownCategory(t *testing.T) {
	t.Parallel()
	registry := Default()

	for _, name := range []string{"", "length", "Speed", "Length "} {
		_, err := registry.Lookup(name)
		assert.ErrorIs(t, err, ErrUnknownCategory, "name %q", name)

		_, err = registry.UnitsOf(name)
		assert.ErrorIs(t, err, ErrUnknownCategory, "name %q", name)
	}
}

func TestRegistryReturnsCopies(t *testing.T) {
	t.Parallel()
	registry := Default()

	categories := registry.Categories()
	categories[0] = "Mutated"
	assert.Equal(t, "Length", registry.Categories()[0])

	units, err := registry.UnitsOf("Length")
	require.NoError(t, err)
	units[0] = "Mutated"

	again, err := registry.UnitsOf("Length")
	require.NoError(t, err)
	assert.Equal(t, "Meters", again[0])
}

func TestCategoryHas(t *testing.T) {
	t.Parallel()
	category, err := Default().Lookup("Weight")
	require.NoError(t, err)

	assert.True(t, category.Has("Pounds"))
	assert.False(t, category.Has("Feet"), "units are not shared across categories")
	assert.False(t, category.Has("pounds"))
}

func TestNewRegistryValidation(t *testing.T) {
	t.Parallel()

	validUnits := []UnitDef{{Name: "A", Factor: 1}, {Name: "B", Factor: 2}}

	tests := []struct {
		name string
		defs []CategoryDef
	}{
		{
			name: "no categories",
			defs: nil,
		},
		{
			name: "empty category name",
			defs: []CategoryDef{{Name: "", Strategy: StrategyLinear, Units: validUnits}},
		},
		{
			name: "duplicate category",
			defs: []CategoryDef{
				{Name: "X", Strategy: StrategyLinear, Units: validUnits},
				{Name: "X", Strategy: StrategyLinear, Units: validUnits},
			},
		},
		{
			name: "single unit",
			defs: []CategoryDef{{Name: "X", Strategy: StrategyLinear, Units: validUnits[:1]}},
		},
		{
			name: "duplicate unit",
			defs: []CategoryDef{{Name: "X", Strategy: StrategyLinear, Units: []UnitDef{
				{Name: "A", Factor: 1}, {Name: "A", Factor: 2},
			}}},
		},
		{
			name: "empty unit name",
			defs: []CategoryDef{{Name: "X", Strategy: StrategyLinear, Units: []UnitDef{
				{Name: "A", Factor: 1}, {Name: "", Factor: 2},
			}}},
		},
		{
			name: "zero factor",
			defs: []CategoryDef{{Name: "X", Strategy: StrategyLinear, Units: []UnitDef{
				{Name: "A", Factor: 1}, {Name: "B", Factor: 0},
			}}},
		},
		{
			name: "negative factor",
			defs: []CategoryDef{{Name: "X", Strategy: StrategyLinear, Units: []UnitDef{
				{Name: "A", Factor: 1}, {Name: "B", Factor: -3},
			}}},
		},
		{
			name: "infinite factor",
			defs: []CategoryDef{{Name: "X", Strategy: StrategyLinear, Units: []UnitDef{
				{Name: "A", Factor: 1}, {Name: "B", Factor: math.Inf(1)},
			}}},
		},
		{
			name: "NaN factor",
			defs: []CategoryDef{{Name: "X", Strategy: StrategyLinear, Units: []UnitDef{
				{Name: "A", Factor: 1}, {Name: "B", Factor: math.NaN()},
			}}},
		},
		{
			name: "unknown affine family",
			defs: []CategoryDef{{Name: "X", Strategy: StrategyAffine, Family: "pressure", Units: []UnitDef{
				{Name: Celsius}, {Name: Kelvin},
			}}},
		},
		{
			name: "unit unsupported by affine family",
			defs: []CategoryDef{{Name: "X", Strategy: StrategyAffine, Family: "temperature", Units: []UnitDef{
				{Name: Celsius}, {Name: "Rankine"},
			}}},
		},
		{
			name: "unknown strategy",
			defs: []CategoryDef{{Name: "X", Strategy: "logarithmic", Units: validUnits}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			registry, err := NewRegistry(tc.defs)
			assert.Nil(t, registry)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestNewRegistryAffineSubset(t *testing.T) {
	t.Parallel()

	registry, err := NewRegistry([]CategoryDef{{
		Name:     "Absolute",
		Strategy: StrategyAffine,
		Family:   "temperature",
		Units:    []UnitDef{{Name: Kelvin}, {Name: Celsius}},
	}})
	require.NoError(t, err)

	category, err := registry.Lookup("Absolute")
	require.NoError(t, err)
	affine, ok := category.Strategy().(*Affine)
	require.True(t, ok)
	assert.Equal(t, "temperature", affine.Family())
	assert.Equal(t, Celsius, affine.Canonical())
	assert.Equal(t, []string{Kelvin, Celsius}, category.Units())
}

func TestLinearConvert(t *testing.T) {
	t.Parallel()
	category, err := Default().Lookup("Length")
	require.NoError(t, err)
	linear, ok := category.Strategy().(*Linear)
	require.True(t, ok)

	assert.Equal(t, 1000.0, linear.Convert(1, "Kilometers", "Meters"))
	metersPerFoot := 0.3048
	assert.Equal(t, 1/metersPerFoot, linear.Convert(1, "Meters", "Feet"))
	assert.InDelta(t, 12.0, linear.Convert(1, "Feet", "Inches"), 1e-12)
}

func TestTemperatureFamily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to string
		in, want float64
	}{
		{Celsius, Fahrenheit, 0, 32},
		{Celsius, Fahrenheit, 100, 212},
		{Fahrenheit, Celsius, 212, 100},
		{Fahrenheit, Celsius, -40, -40},
		{Celsius, Kelvin, 0, 273.15},
		{Kelvin, Celsius, 0, -273.15},
		{Kelvin, Fahrenheit, 0, -459.67},
		{Fahrenheit, Kelvin, 32, 273.15},
		{Celsius, Celsius, 21.5, 21.5},
	}

	for _, tc := range tests {
		got := temperature.Convert(tc.in, tc.from, tc.to)
		assert.InDelta(t, tc.want, got, 1e-9, "%v %s -> %s", tc.in, tc.from, tc.to)
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	t.Parallel()
	assert.False(t, errors.Is(ErrUnknownCategory, ErrUnitNotInCategory))
	assert.False(t, errors.Is(ErrUnitNotInCategory, ErrInvalidCatalog))
}
