// Package units defines the unit catalog: the fixed set of measurement
// categories, their member units, and the conversion strategy each category
// uses.
//
// The catalog is an HCL document compiled into the binary. It is decoded and
// validated once into an immutable Registry, which is safe for concurrent use
// by any number of callers.
package units
