package ican

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed registry.yaml
var registryYAML []byte

// registryEntry is the wire shape of one registry.yaml record.
type registryEntry struct {
	Code      string `yaml:"code"`
	Length    int    `yaml:"length"`
	Structure string `yaml:"structure"`
	Variant   string `yaml:"variant,omitempty"`
	Example   string `yaml:"example"`
}

// registry is the process-wide specification table, built once at package
// init and read-only afterwards, so concurrent lookups need no
// synchronization. A malformed embedded table is a packaging bug and panics
// immediately rather than surfacing on first use.
var registry = loadRegistry(registryYAML)

func loadRegistry(data []byte) map[string]Specification {
	var entries []registryEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		panic(fmt.Sprintf("ican: malformed embedded registry: %v", err))
	}
	if len(entries) == 0 {
		panic("ican: embedded registry is empty")
	}

	specs := make(map[string]Specification, len(entries))
	for _, e := range entries {
		variant, err := ParseCryptoVariant(e.Variant)
		if err != nil {
			panic(fmt.Sprintf("ican: registry entry %s: %v", e.Code, err))
		}
		spec, err := NewSpecification(e.Code, e.Length, e.Structure, variant, e.Example)
		if err != nil {
			panic(fmt.Sprintf("ican: registry entry %s: %v", e.Code, err))
		}
		if _, dup := specs[spec.code]; dup {
			panic(fmt.Sprintf("ican: duplicate registry entry %s", spec.code))
		}
		specs[spec.code] = spec
	}
	return specs
}

// Lookup returns the specification for a two-letter country or asset code.
// Matching is exact and uppercase only; callers normalize first.
func Lookup(code string) (Specification, error) {
	spec, ok := registry[code]
	if !ok {
		return Specification{}, fmt.Errorf("%w: %q", ErrCodeNotFound, code)
	}
	return spec, nil
}

// Specifications returns every registry entry, sorted by code.
func Specifications() []Specification {
	out := make([]Specification, 0, len(registry))
	for _, spec := range registry {
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].code < out[j].code
	})
	return out
}
