// Package materials builds an eos.Table from a YAML-described material
// catalogue. Constructing the catalogue is explicitly out of scope for
// the Riemann solver's numerical core (spec.md §1 treats it as an
// external collaborator); it is the boundary where user-supplied input
// is validated before the core ever sees it.
package materials

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/exactriemann/eos"
)

// Entry describes one material's EOS and its parameters, decoded from
// the YAML catalogue file.
type Entry struct {
	EOS    string             `yaml:"eos"`
	Params map[string]float64 `yaml:"params"`
}

// Catalogue is the YAML-decoded material table: material id -> Entry.
type Catalogue struct {
	Materials map[int]Entry `yaml:"materials"`
}

// Parse decodes a YAML catalogue document into c, following the same
// Unmarshal-onto-receiver pattern used throughout this module's
// configuration types.
func (c *Catalogue) Parse(data []byte) error {
	return yaml.Unmarshal(data, c)
}

// Print writes a human-readable summary of the catalogue to stdout,
// materials sorted by id.
func (c *Catalogue) Print() {
	ids := make([]int, 0, len(c.Materials))
	for id := range c.Materials {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		e := c.Materials[id]
		fmt.Printf("material[%d] = %s %v\n", id, e.EOS, e.Params)
	}
}

// DefaultCatalogue returns the single-material ideal-gas (gamma=1.4)
// catalogue used by the §8 end-to-end scenarios.
func DefaultCatalogue() *Catalogue {
	return &Catalogue{
		Materials: map[int]Entry{
			0: {EOS: "stiffened_gas", Params: map[string]float64{"gamma": 1.4}},
		},
	}
}

// Build instantiates an eos.Table from the catalogue. Material ids must
// be contiguous starting at 0 (the table is a plain indexed slice); a
// gap, a negative id, or an unknown EOS name is a reportable input
// error, not a panic, since this function is a validation boundary for
// externally supplied data.
func (c *Catalogue) Build() (*eos.Table, error) {
	if len(c.Materials) == 0 {
		return nil, fmt.Errorf("materials: catalogue has no materials")
	}

	maxID := -1
	for id := range c.Materials {
		if id < 0 {
			return nil, fmt.Errorf("materials: negative material id %d", id)
		}
		if id > maxID {
			maxID = id
		}
	}

	caps := make([]eos.Capability, maxID+1)
	filled := make([]bool, maxID+1)
	for id, entry := range c.Materials {
		capability, err := build(entry)
		if err != nil {
			return nil, fmt.Errorf("materials: material %d: %w", id, err)
		}
		caps[id] = capability
		filled[id] = true
	}
	for id, ok := range filled {
		if !ok {
			return nil, fmt.Errorf("materials: missing material id %d (ids must be contiguous from 0)", id)
		}
	}

	return eos.NewTable(caps), nil
}

func build(e Entry) (eos.Capability, error) {
	p := e.Params
	switch e.EOS {
	case "stiffened_gas", "ideal_gas":
		return eos.StiffenedGas{Gamma: p["gamma"], PRef: p["pref"]}, nil
	case "mie_gruneisen":
		return eos.MieGruneisen{
			Rho0:   p["rho0"],
			C0:     p["c0"],
			S:      p["s"],
			Gamma0: p["gamma0"],
		}, nil
	case "jwl":
		return eos.JWL{
			A:     p["a"],
			B:     p["b"],
			R1:    p["r1"],
			R2:    p["r2"],
			Omega: p["omega"],
			Rho0:  p["rho0"],
		}, nil
	default:
		return nil, fmt.Errorf("unknown eos %q", e.EOS)
	}
}
