package units

import (
	"fmt"
	"io"
	"slices"
	"strings"

	gounit "gonum.org/v1/gonum/unit"
	"gopkg.in/yaml.v3"
)

// definitionFile is the YAML layout accepted by LoadDefinitions:
//
//	units:
//	  - name: smoot
//	    symbols: [smoot]
//	    prefixable: [smoot]
//	    prefixes: si          # none | si | binary | si+binary
//	    factor: 1.7018
//	    dimensions: {length: 1}
type definitionFile struct {
	Units []definitionEntry `yaml:"units"`
}

type definitionEntry struct {
	Name       string         `yaml:"name"`
	Symbols    []string       `yaml:"symbols"`
	Prefixable []string       `yaml:"prefixable"`
	Prefixes   string         `yaml:"prefixes"`
	Factor     float64        `yaml:"factor"`
	Offset     float64        `yaml:"offset"`
	Dimensions map[string]int `yaml:"dimensions"`
}

// dimensionNames maps YAML dimension keys to gonum dimensions.
var dimensionNames = map[string]gounit.Dimension{
	"current":            gounit.CurrentDim,
	"length":             gounit.LengthDim,
	"luminous_intensity": gounit.LuminousIntensityDim,
	"mass":               gounit.MassDim,
	"mole":               gounit.MoleDim,
	"temperature":        gounit.TemperatureDim,
	"time":               gounit.TimeDim,
	"angle":              gounit.AngleDim,
}

// LoadDefinitions decodes unit definitions from YAML and validates each of
// them. The result is typically passed to Default().With(...) or NewRegistry.
func LoadDefinitions(r io.Reader) ([]*Definition, error) {
	var file definitionFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("units: decode definitions: %w", err)
	}

	out := make([]*Definition, 0, len(file.Units))
	for i, e := range file.Units {
		d, err := e.definition()
		if err != nil {
			return nil, fmt.Errorf("units[%d]: %w", i, err)
		}
		if err = d.validate(); err != nil {
			return nil, fmt.Errorf("units[%d]: %w", i, err)
		}
		out = append(out, d)
	}

	return out, nil
}

func (e definitionEntry) definition() (*Definition, error) {
	prefixes, err := prefixTable(e.Prefixes)
	if err != nil {
		return nil, err
	}
	dims := make(gounit.Dimensions, len(e.Dimensions))
	for name, power := range e.Dimensions {
		d, ok := dimensionNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%s: unknown dimension %q: %w", e.Name, name, ErrInvalidDefinition)
		}
		dims[d] = power
	}

	return &Definition{
		Name:       e.Name,
		Symbols:    e.Symbols,
		Prefixable: e.Prefixable,
		Prefixes:   prefixes,
		Factor:     e.Factor,
		Offset:     e.Offset,
		Dimensions: dims,
	}, nil
}

func prefixTable(name string) ([]Prefix, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return nil, nil
	case "si":
		return slices.Clone(SIPrefixes), nil
	case "binary":
		return slices.Clone(BinaryPrefixes), nil
	case "si+binary":
		return prefixSet(SIPrefixes, BinaryPrefixes), nil
	}

	return nil, fmt.Errorf("unknown prefix table %q: %w", name, ErrInvalidDefinition)
}
