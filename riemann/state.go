// Package riemann implements an exact, two-material Riemann solver for
// the one-dimensional compressible Euler equations with arbitrary
// equations of state. See SPEC_FULL.md for the full component
// breakdown; in outline: a pressure-space root finder (pressure.go)
// repeatedly calls a wave connector (connector.go), which in turn
// integrates rarefactions with a one-step RK4 (rarefaction.go) or
// solves the Hugoniot shock relation, and a final sampler
// (solution.go) picks the state on x/t = 0.
package riemann

// Axis selects which component of velocity is the 1D problem's normal
// direction.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

// PrimitiveState is a fluid parcel's primitive variables: density,
// velocity (all three components — only U[dir] is normal to the
// Riemann problem; the other two pass through by upwinding), pressure,
// and the material occupying it.
type PrimitiveState struct {
	Rho        float64
	U          [3]float64
	P          float64
	MaterialID int
}

// Un returns the velocity component normal to the 1D problem.
func (v PrimitiveState) Un(dir Axis) float64 {
	return v.U[dir]
}

// withNormal returns a copy of v with its normal component set to un.
func (v PrimitiveState) withNormal(dir Axis, un float64) PrimitiveState {
	v.U[dir] = un
	return v
}

// Result is the outcome of solving a single Riemann problem: the
// primitive state and material id on the ray x/t = 0, and the two star
// states immediately to either side of the contact discontinuity.
type Result struct {
	V           PrimitiveState
	MaterialID  int
	Vsm         PrimitiveState // star state, left of the contact
	Vsp         PrimitiveState // star state, right of the contact
	Diagnostics Diagnostics
}

// Diagnostics carries non-fatal information about how a solution was
// reached: whether the sample point falls inside a transonic
// rarefaction fan, whether the solver had to fall back to a
// best-so-far or prescribed-pressure approximation, and (when tracing
// is enabled) the sampled wave profile.
type Diagnostics struct {
	TransonicRarefaction bool
	ApproximateLeft      bool // a 1-wave rarefaction probe stopped at its step cap or retry ceiling with a physical last state, or the pressure iteration used its no-bracket fallback
	ApproximateRight     bool // same, for the 3-wave
	Warning              string
	Trace                []ProfilePoint
}
