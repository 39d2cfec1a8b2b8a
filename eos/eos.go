// Package eos provides the equation-of-state capability consumed by
// package riemann. The core Riemann solver never assumes an ideal-gas
// closed form; every derivative, sound speed and internal energy it
// needs comes through this interface.
package eos

// Capability is the set of thermodynamic queries a material must expose
// for the exact Riemann solver to connect an outer state to its star
// state, whether through a rarefaction or a shock.
type Capability interface {
	// InternalEnergy returns the specific internal energy e for a state
	// at density rho and pressure p.
	InternalEnergy(rho, p float64) float64

	// SoundSpeedSquared returns c^2 at density rho and specific internal
	// energy e. A negative result signals a non-physical state; callers
	// must treat it as failure, not clamp or sqrt it.
	SoundSpeedSquared(rho, e float64) float64

	// DPDRho returns dp/drho at fixed e, evaluated at (rho, e).
	DPDRho(rho, e float64) float64

	// CheckState reports whether (rho, p) is non-physical for this
	// material. The polarity matters: true means non-physical.
	CheckState(rho, p float64) bool
}

// Table is a contiguous, index-stable collection of material
// capabilities. It is built once (typically from a materials.Catalogue)
// and borrowed by a riemann.Solver for the solver's entire lifetime;
// Table itself is never mutated after construction.
type Table struct {
	materials []Capability
}

// NewTable builds a Table from materials indexed by their position in
// the slice (material id == slice index).
func NewTable(materials []Capability) *Table {
	t := &Table{materials: make([]Capability, len(materials))}
	copy(t.materials, materials)
	return t
}

// Len returns the number of materials in the table.
func (t *Table) Len() int {
	return len(t.materials)
}

// At returns the capability for material id. It panics if id is out of
// range: an out-of-range id indicates a caller bug (an invalid material
// table or a corrupted input), not a condition the solver can recover
// from at this layer.
func (t *Table) At(id int) Capability {
	if id < 0 || id >= len(t.materials) {
		panic("eos: material id out of range")
	}
	return t.materials[id]
}
