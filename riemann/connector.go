package riemann

import (
	"fmt"
	"math"

	"github.com/notargets/exactriemann/eos"
)

// computeStar returns the density and normal velocity immediately
// behind a single nonlinear wave (the 1-wave or the 3-wave), given the
// known state ahead of it (rho0, u0, p0) and the star pressure pStar
// shared by both waves. It dispatches to a rarefaction integration or
// a Hugoniot shock solve depending on the sign of pStar - p0, mirroring
// ComputeRhoUStar in the original solver.
func computeStar(capability eos.Capability, w wave, rho0, u0, p0, pStar float64, cfg Config, ps *probeState, numStepsRarefaction int) (rhoStar, uStar float64, err error) {
	if pStar <= p0 {
		rhoStar, uRel, _, approx, ok := rarefactionWalk(capability, w, rho0, 0, p0, pStar, numStepsRarefaction, cfg.TolRarefaction)
		if !ok {
			return 0, 0, fmt.Errorf("rarefaction integration failed at rho0=%g p0=%g pStar=%g", rho0, p0, pStar)
		}
		if approx {
			if w == wave1 {
				ps.approximateLeft = true
			} else {
				ps.approximateRight = true
			}
		}
		// rarefactionWalk integrates u relative to u0 = 0; restore the
		// true frame velocity.
		return rhoStar, u0 + uRel, nil
	}
	return shockRhoUStar(capability, w, rho0, u0, p0, pStar, cfg)
}

// hugoniotResidual is the Rankine-Hugoniot energy jump across a shock
// connecting the known state (rho, p) to the trial density rhoStar at
// pressure pStar: the internal energy implied by the EOS at
// (rhoStar, pStar) must equal the internal energy implied by the jump
// condition itself.
func hugoniotResidual(capability eos.Capability, rho, p, pStar, rhoStar float64) (float64, bool) {
	if capability.CheckState(rhoStar, pStar) {
		return 0, false
	}
	eEOS := capability.InternalEnergy(rhoStar, pStar)
	eJump := capability.InternalEnergy(rho, p) + 0.5*(pStar+p)*(1/rho-1/rhoStar)
	return eEOS - eJump, true
}

// shockRhoUStar solves the Hugoniot relation for rhoStar at the given
// pStar > p0, then recovers the star velocity from the mass/momentum
// jump conditions.
func shockRhoUStar(capability eos.Capability, w wave, rho0, u0, p0, pStar float64, cfg Config) (rhoStar, uStar float64, err error) {
	rhoStar, err = solveHugoniotBracketed(capability, rho0, p0, pStar, cfg.MaxItsShock, cfg.TolShock)
	if err != nil {
		return 0, 0, err
	}

	// u* = u0 -/+ sqrt((p*-p0)(1/rho0 - 1/rho*)); the 1-wave (w=-1)
	// decelerates the fluid behind it relative to u0, the 3-wave (w=1)
	// accelerates it. The radicand is guaranteed nonnegative for a
	// compressive jump (pStar > p0 forces rhoStar > rho0).
	radicand := (pStar - p0) * (1/rho0 - 1/rhoStar)
	if radicand < 0 {
		if radicand > -1e-12 {
			radicand = 0
		} else {
			return 0, 0, fmt.Errorf("shock velocity radicand negative (%g) at rho0=%g p0=%g pStar=%g", radicand, rho0, p0, pStar)
		}
	}
	du := math.Sqrt(radicand)
	uStar = u0 + float64(w)*du
	return rhoStar, uStar, nil
}

// solveHugoniotBracketed finds the density rhoStar > rho0 at which
// hugoniotResidual(capability, rho0, p0, pStar, .) vanishes, expanding a
// bracket geometrically outward from rho0 and then refining it with a
// safeguarded secant (falling back to bisection) until the bracket
// width is below tolShock or the residual is exactly zero.
func solveHugoniotBracketed(capability eos.Capability, rho0, p0, pStar float64, maxIts int, tolShock float64) (float64, error) {
	f := func(rhoStar float64) (float64, bool) {
		return hugoniotResidual(capability, rho0, p0, pStar, rhoStar)
	}

	// A compressive shock always has rhoStar > rho0; seed the bracket
	// just above rho0 and expand geometrically until the residual
	// changes sign.
	lo := rho0 * 1.001
	flo, ok := f(lo)
	if !ok {
		return 0, fmt.Errorf("nonphysical probe at lower Hugoniot seed rho=%g", lo)
	}

	if flo == 0 {
		return lo, nil
	}

	hi := rho0 * 1.5
	var fhi float64
	found := false
	for i := 0; i < maxIts; i++ {
		v, probeOK := f(hi)
		if !probeOK {
			hi = rho0 + (hi-rho0)*0.5
			continue
		}
		fhi = v
		if fhi == 0 {
			return hi, nil
		}
		if (flo < 0) != (fhi < 0) {
			found = true
			break
		}
		lo, flo = hi, fhi
		hi = rho0 + (hi-rho0)*2.5
	}
	if !found {
		return 0, &RiemannError{Kind: HugoniotBracketNotFound, Msg: fmt.Sprintf("no sign change in Hugoniot residual after %d expansions from rho0=%g", maxIts, rho0)}
	}

	a, b := lo, hi
	fa, fb := flo, fhi
	width0 := b - a
	for i := 0; i < maxIts; i++ {
		if width0 == 0 {
			break
		}
		if math.Abs(b-a) <= math.Min(tolShock, 0.001*width0) {
			break
		}

		var c float64
		if fa != fb {
			c = b - fb*(b-a)/(fb-fa)
		}
		if fa == fb || c <= math.Min(a, b) || c >= math.Max(a, b) {
			c = 0.5 * (a + b)
		}

		fc, ok := f(c)
		if !ok {
			c = 0.5 * (a + b)
			fc, ok = f(c)
			if !ok {
				return 0, &RiemannError{Kind: InternalInvariantViolation, Msg: fmt.Sprintf("nonphysical probe inside confirmed Hugoniot bracket [%g,%g]", a, b)}
			}
		}
		if fc == 0 {
			return c, nil
		}
		if (fa < 0) != (fc < 0) {
			b, fb = c, fc
		} else {
			a, fa = c, fc
		}
	}
	return 0.5 * (a + b), nil
}
