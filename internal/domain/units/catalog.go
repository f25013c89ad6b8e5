package units

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

//go:embed catalog.hcl
var catalogSource []byte

// catalogFilename is used in diagnostics for the embedded catalog.
const catalogFilename = "catalog.hcl"

// hclCatalogFile represents the top-level structure of a catalog file for decoding.
type hclCatalogFile struct {
	Categories []*hclCategory `hcl:"category,block"`
}

type hclCategory struct {
	Name     string     `hcl:"name,label"`
	Strategy string     `hcl:"strategy"`
	Family   string     `hcl:"family,optional"`
	Units    []*hclUnit `hcl:"unit,block"`
}

type hclUnit struct {
	Name   string   `hcl:"name,label"`
	Factor *float64 `hcl:"factor,optional"`
}

// Load parses an HCL catalog document and builds a Registry from it.
// filename is only used to label diagnostics.
func Load(src []byte, filename string) (*Registry, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse unit catalog %s: %w", filename, diags)
	}

	var parsed hclCatalogFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode unit catalog %s: %w", filename, diags)
	}

	defs := make([]CategoryDef, 0, len(parsed.Categories))
	for _, c := range parsed.Categories {
		def, err := c.toDef()
		if err != nil {
			return nil, fmt.Errorf("unit catalog %s: %w", filename, err)
		}
		defs = append(defs, def)
	}

	registry, err := NewRegistry(defs)
	if err != nil {
		return nil, fmt.Errorf("unit catalog %s: %w", filename, err)
	}
	return registry, nil
}

// toDef converts a decoded category block into a CategoryDef.
func (c *hclCategory) toDef() (CategoryDef, error) {
	kind := StrategyKind(c.Strategy)
	if !kind.IsValid() {
		return CategoryDef{}, fmt.Errorf("%w: category %q has unknown strategy %q",
			ErrInvalidCatalog, c.Name, c.Strategy)
	}

	def := CategoryDef{
		Name:     c.Name,
		Strategy: kind,
		Family:   c.Family,
		Units:    make([]UnitDef, 0, len(c.Units)),
	}

	for _, u := range c.Units {
		unit := UnitDef{Name: u.Name}
		switch {
		case kind == StrategyLinear && u.Factor == nil:
			return CategoryDef{}, fmt.Errorf("%w: unit %q in linear category %q has no factor",
				ErrInvalidCatalog, u.Name, c.Name)
		case kind != StrategyLinear && u.Factor != nil:
			return CategoryDef{}, fmt.Errorf("%w: unit %q in %s category %q must not set a factor",
				ErrInvalidCatalog, u.Name, kind, c.Name)
		case u.Factor != nil:
			unit.Factor = *u.Factor
		}
		def.Units = append(def.Units, unit)
	}

	return def, nil
}

// MustLoad is like Load but panics on error. It is meant for catalogs
// compiled into the binary, where a failure is a build defect.
func MustLoad(src []byte, filename string) *Registry {
	registry, err := Load(src, filename)
	if err != nil {
		panic(err)
	}
	return registry
}

// Default returns the registry built from the embedded catalog. The catalog
// is decoded on first use and the same Registry is returned afterwards.
var Default = sync.OnceValue(func() *Registry {
	return MustLoad(catalogSource, catalogFilename)
})
