package riemann

import (
	"math"

	"github.com/notargets/exactriemann/eos"
)

// wave identifies which of the two non-linear fields a rarefaction
// integration follows: wave1 (the 1-wave, left of the contact) carries
// density upward with velocity decreasing, wave3 (the 3-wave, right of
// the contact) carries it with velocity increasing. The ODE in rho is
// the same isentropic relation for both; only the sign on du/drho
// flips.
type wave int

const (
	wave1 wave = -1
	wave3 wave = 1
)

// rarefactionDerivatives evaluates dp/drho = c^2 and du/drho = -/+ c/rho
// at one point along an isentropic path, given the internal energy e
// consistent with (rho, p) under capability.
func rarefactionDerivatives(capability eos.Capability, w wave, rho, p, e float64) (dpdrho, dudrho float64, ok bool) {
	c2 := capability.SoundSpeedSquared(rho, e)
	if c2 < 0 {
		return 0, 0, false
	}
	c := math.Sqrt(c2)
	dpdrho = c2
	dudrho = float64(w) * c / rho
	return dpdrho, dudrho, true
}

// rarefactionStepRK4 advances one classical 4-stage Runge-Kutta step
// along the isentropic rarefaction path, from (rho0, u0, p0) over the
// signed density increment drho. The rarefaction walks pass drho < 0,
// since density falls from the outer state toward the star state
// through the 1-wave and the 3-wave alike. ok is false if any of the
// four stages probes a nonphysical state.
func rarefactionStepRK4(capability eos.Capability, w wave, rho0, u0, p0, drho float64) (rho, u, p float64, ok bool) {
	eval := func(rho, p float64) (dpdrho, dudrho float64, ok bool) {
		if capability.CheckState(rho, p) {
			return 0, 0, false
		}
		e := capability.InternalEnergy(rho, p)
		return rarefactionDerivatives(capability, w, rho, p, e)
	}

	k1p, k1u, ok := eval(rho0, p0)
	if !ok {
		return 0, 0, 0, false
	}

	rho1 := rho0 + 0.5*drho
	k2p, k2u, ok := eval(rho1, p0+0.5*drho*k1p)
	if !ok {
		return 0, 0, 0, false
	}

	k3p, k3u, ok := eval(rho1, p0+0.5*drho*k2p)
	if !ok {
		return 0, 0, 0, false
	}

	rho2 := rho0 + drho
	k4p, k4u, ok := eval(rho2, p0+drho*k3p)
	if !ok {
		return 0, 0, 0, false
	}

	p = p0 + drho/6*(k1p+2*k2p+2*k3p+k4p)
	u = u0 + drho/6*(k1u+2*k2u+2*k3u+k4u)
	rho = rho2
	if capability.CheckState(rho, p) {
		return 0, 0, 0, false
	}
	return rho, u, p, true
}

// rarefactionWalk integrates the isentropic path from the known state
// (rho0, u0, p0) down to the density rhoStar at which the local
// pressure equals target. It returns the state at rhoStar (the foot of
// the fan, i.e. the star state on this side of the contact), whether
// that state is only approximate, and whether the walk succeeded.
//
// The walk takes RK4 steps of size rho0/numSteps in density until the
// pressure drops to or below target, then applies Newton corrections
// (one RK4 step each, at most numSteps of them) until the pressure
// matches target to tolRarefaction. If a step probes a nonphysical
// state the step size is halved and the step retried; after more than
// maxRetries failed steps, or after 5*numSteps coarse steps (accepted
// and rejected), the last physical state is returned as an approximate
// result.
func rarefactionWalk(capability eos.Capability, w wave, rho0, u0, p0, target float64, numSteps int, tolRarefaction float64) (rhoStar, uStar, pStar float64, approximate bool, ok bool) {
	const maxRetries = 8

	// A rarefaction only connects states with target on the same side
	// of p0 as physically required: target < p0 always, since a
	// rarefaction is by definition an expansion. Walking is driven by
	// density, increasing from rho0 toward the (unknown) rhoStar < rho0
	// for a pressure decrease... but the isentropic relation is
	// monotonic in rho, so equivalently we walk rho downward. To keep
	// one sign convention we integrate with drho < 0 directly.
	if target >= p0 {
		return rho0, u0, p0, false, true
	}

	rho, u, p := rho0, u0, p0
	// Coarse bracket: walk until p drops at or below target, or the
	// state becomes nonphysical (approaching a vacuum), shrinking step
	// size on failure.
	step := rho0 / float64(numSteps)
	if step <= 0 {
		return 0, 0, 0, false, false
	}

	retries := 0
	for attempts := 0; p > target; attempts++ {
		if attempts >= 5*numSteps {
			// Step cap reached with a physical last state: accept it as
			// an approximate foot of the fan.
			return rho, u, p, true, true
		}
		nrho, nu, np, stepOK := rarefactionStepRK4(capability, w, rho, u, p, -step)
		if !stepOK || nrho <= 0 {
			retries++
			if retries > maxRetries {
				// Treat the last physical state reached as an
				// approximate foot of the fan rather than failing
				// outright: a step-size retry ceiling near a vacuum
				// is expected, not a solver bug.
				return rho, u, p, true, true
			}
			step *= 0.5
			continue
		}
		rho, u, p = nrho, nu, np
		if rho <= 1e-14 {
			return rho, u, p, true, true
		}
	}

	// The coarse walk landed at or just past target. Newton-correct the
	// last bit using the local derivative dp/drho, taking single RK4
	// steps of shrinking size until p matches target to tolRarefaction.
	for iter := 0; iter < numSteps; iter++ {
		if math.Abs(p-target) <= tolRarefaction*math.Max(1, math.Abs(target)) {
			break
		}
		e := capability.InternalEnergy(rho, p)
		dpdrho, _, derivOK := rarefactionDerivatives(capability, w, rho, p, e)
		if !derivOK || dpdrho == 0 {
			break
		}
		dRho := (target - p) / dpdrho
		nrho, nu, np, stepOK := rarefactionStepRK4(capability, w, rho, u, p, dRho)
		if !stepOK {
			dRho *= 0.5
			nrho, nu, np, stepOK = rarefactionStepRK4(capability, w, rho, u, p, dRho)
			if !stepOK {
				break
			}
		}
		rho, u, p = nrho, nu, np
	}

	return rho, u, p, false, true
}
