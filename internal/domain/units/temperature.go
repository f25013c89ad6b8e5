package units

// Temperature unit names
const (
	Celsius    = "Celsius"
	Fahrenheit = "Fahrenheit"
	Kelvin     = "Kelvin"
)

// absoluteZeroCelsius is the Celsius value of 0 K, negated.
const absoluteZeroCelsius = 273.15

// temperature routes every temperature conversion through Celsius.
var temperature = &Affine{
	family:    "temperature",
	canonical: Celsius,
	toCanonical: map[string]AffineFunc{
		Celsius:    func(v float64) float64 { return v },
		Fahrenheit: func(v float64) float64 { return (v - 32) * 5 / 9 },
		Kelvin:     func(v float64) float64 { return v - absoluteZeroCelsius },
	},
	fromCanonical: map[string]AffineFunc{
		Celsius:    func(c float64) float64 { return c },
		Fahrenheit: func(c float64) float64 { return c*9/5 + 32 },
		Kelvin:     func(c float64) float64 { return c + absoluteZeroCelsius },
	},
}
