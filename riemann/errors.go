package riemann

import "fmt"

// FailureKind identifies which of the solver's failure modes occurred.
// Most kinds are recovered internally (by step reduction, rebracketing,
// or a best-so-far fallback). Solve returns a *RiemannError for
// MainSolverDiverged and InternalInvariantViolation, for NonphysicalProbe
// when an input state itself is nonphysical, and for NoPressureBracket
// when no probe during bracket expansion was physical.
type FailureKind int

const (
	// NonphysicalProbe: an EOS probe reported rho <= 0 or c^2 < 0.
	// Always recovered internally by step reduction or rebracketing.
	NonphysicalProbe FailureKind = iota
	// HugoniotBracketNotFound: the shock root finder exhausted
	// MaxItsShock while searching for a sign change. Surfaces as a
	// ComputeStar failure, handled by the caller (Phase B rebracketing
	// or a fatal report from Solve if it happens on a confirmed
	// bracket, which should not occur).
	HugoniotBracketNotFound
	// RarefactionNotConverged: the RK4 walk exhausted 5*NumStepsRarefaction
	// steps. If the last probed state is physical this is treated as
	// an approximate success (see Diagnostics.ApproximateLeft/Right);
	// otherwise it is a ComputeStar failure.
	RarefactionNotConverged
	// NoPressureBracket: Phase B could not find p0 < p1 with
	// f0*f1 <= 0. Downgraded to a warning: Solve returns a usable,
	// approximate Result with Diagnostics.Warning set.
	NoPressureBracket
	// MainSolverDiverged: Phase C exhausted MaxItsMain without meeting
	// the stopping criteria on a confirmed bracket. Fatal.
	MainSolverDiverged
	// InternalInvariantViolation: an invariant that a confirmed bracket
	// or a valid input should guarantee was violated (a nonphysical
	// probe inside a confirmed pressure or Hugoniot bracket, or a
	// material id outside the table). Fatal.
	InternalInvariantViolation
)

func (k FailureKind) String() string {
	switch k {
	case NonphysicalProbe:
		return "NonphysicalProbe"
	case HugoniotBracketNotFound:
		return "HugoniotBracketNotFound"
	case RarefactionNotConverged:
		return "RarefactionNotConverged"
	case NoPressureBracket:
		return "NoPressureBracket"
	case MainSolverDiverged:
		return "MainSolverDiverged"
	case InternalInvariantViolation:
		return "InternalInvariantViolation"
	default:
		return "UnknownFailureKind"
	}
}

// RiemannError is returned by Solve only for fatal failures: Phase C
// divergence, an internal invariant violation, a nonphysical input
// state, or a bracket search with no physical probe. It carries the
// offending left/right states so the caller can log them.
type RiemannError struct {
	Kind  FailureKind
	Left  PrimitiveState
	Right PrimitiveState
	Msg   string
}

func (e *RiemannError) Error() string {
	return fmt.Sprintf("riemann: %s: %s (left=%+v, right=%+v)", e.Kind, e.Msg, e.Left, e.Right)
}
