package riemann

import (
	"math"
	"sort"

	"github.com/notargets/exactriemann/eos"
)

// ProfilePoint is one row of the optional wave-profile trace: the
// self-similar coordinate xi = x/t, the state at that point, its
// internal energy, and which material occupies it.
type ProfilePoint struct {
	Xi         float64
	Rho        float64
	U          float64
	P          float64
	E          float64
	MaterialID int
}

// probeState accumulates the diagnostics of one Solve call: the
// approximate flags and the optional profile trace. It is allocated
// once per Solve call. The approximate flags are set by any probe of
// the pressure iteration (including probes the root finder later
// discards) and by its no-bracket fallback; the trace is only written
// during final sampling, after the star pressure has converged.
type probeState struct {
	approximateLeft  bool
	approximateRight bool
	tracing          bool
	trace            []ProfilePoint
}

func newProbeState(tracing bool) *probeState {
	return &probeState{tracing: tracing}
}

func (ps *probeState) record(xi, rho, u, p float64, capability eos.Capability, id int) {
	if !ps.tracing {
		return
	}
	e := capability.InternalEnergy(rho, p)
	ps.trace = append(ps.trace, ProfilePoint{Xi: xi, Rho: rho, U: u, P: p, E: e, MaterialID: id})
}

// finalizeProfile sorts the trace by xi and pads it with sentinel rows
// at xi_min - span and xi_max + span, matching the padding the original
// diagnostic output applies before writing its solution file.
func finalizeProfile(trace []ProfilePoint) []ProfilePoint {
	if len(trace) == 0 {
		return trace
	}
	sort.Slice(trace, func(i, j int) bool { return trace[i].Xi < trace[j].Xi })

	first, last := trace[0], trace[len(trace)-1]
	span := last.Xi - first.Xi
	if span == 0 {
		span = math.Max(1e-6, 0.001*math.Abs(first.Xi))
	}

	out := make([]ProfilePoint, 0, len(trace)+2)
	out = append(out, ProfilePoint{Xi: first.Xi - span, Rho: first.Rho, U: first.U, P: first.P, E: first.E, MaterialID: first.MaterialID})
	out = append(out, trace...)
	out = append(out, ProfilePoint{Xi: last.Xi + span, Rho: last.Rho, U: last.U, P: last.P, E: last.E, MaterialID: last.MaterialID})
	return out
}
