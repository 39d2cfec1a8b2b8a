package riemann

import (
	"fmt"

	"github.com/notargets/exactriemann/eos"
)

// Solver binds a set of tunables to a material table and solves
// two-material Riemann problems against it. A Solver is immutable
// after construction and is safe for concurrent use by multiple
// goroutines, since it carries no mutable state of its own — each
// Solve call allocates its own probeState.
type Solver struct {
	cfg   Config
	table *eos.Table
}

// NewSolver builds a Solver from a tunables Config and a material
// table. It does not copy the table; callers must not mutate it after
// the Solver is constructed.
func NewSolver(cfg Config, table *eos.Table) *Solver {
	return &Solver{cfg: cfg, table: table}
}

// Solve computes the exact solution of the Riemann problem posed by
// the left and right primitive states along the given axis. It
// returns the state and material id on x/t = 0, the two star states,
// and diagnostics describing how the solution was reached.
func (s *Solver) Solve(dir Axis, left, right PrimitiveState) (Result, error) {
	if left.MaterialID < 0 || left.MaterialID >= s.table.Len() {
		return Result{}, &RiemannError{Kind: InternalInvariantViolation, Left: left, Right: right, Msg: fmt.Sprintf("left material id %d out of range [0,%d)", left.MaterialID, s.table.Len())}
	}
	if right.MaterialID < 0 || right.MaterialID >= s.table.Len() {
		return Result{}, &RiemannError{Kind: InternalInvariantViolation, Left: left, Right: right, Msg: fmt.Sprintf("right material id %d out of range [0,%d)", right.MaterialID, s.table.Len())}
	}

	capL := s.table.At(left.MaterialID)
	capR := s.table.At(right.MaterialID)

	if capL.CheckState(left.Rho, left.P) {
		return Result{}, &RiemannError{Kind: NonphysicalProbe, Left: left, Right: right, Msg: "left input state is nonphysical"}
	}
	if capR.CheckState(right.Rho, right.P) {
		return Result{}, &RiemannError{Kind: NonphysicalProbe, Left: left, Right: right, Msg: "right input state is nonphysical"}
	}

	// Trivial case: identical density, pressure and normal velocity in
	// a single material means there is no wave structure to resolve at
	// all, which is common at initialization and worth shortcutting
	// rather than handing zero-width brackets to the root finder.
	if left.MaterialID == right.MaterialID && left.Rho == right.Rho &&
		left.Un(dir) == right.Un(dir) && left.P == right.P {
		return Result{
			V:          left,
			MaterialID: left.MaterialID,
			Vsm:        left,
			Vsp:        right,
		}, nil
	}

	ps := newProbeState(s.cfg.TraceProfile)
	pStar, probe, err := solvePressure(capL, capR, left, right, dir, s.cfg, ps)
	if err != nil {
		return Result{}, err
	}

	result := sampleSolution(capL, capR, left, right, dir, pStar, probe.rhoStarL, probe.uStarL, probe.rhoStarR, probe.uStarR, s.cfg, ps)
	if result.Diagnostics.ApproximateLeft || result.Diagnostics.ApproximateRight {
		result.Diagnostics.Warning = "star state is approximate; see Diagnostics.ApproximateLeft/Right"
	}
	if probe.rhoStarL <= 0 || probe.rhoStarR <= 0 {
		result.Diagnostics.Warning = "star density underflow; treating as approximate"
	}
	return result, nil
}
