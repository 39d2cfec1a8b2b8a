package riemann

import (
	"math"

	"github.com/notargets/exactriemann/eos"
)

// sampleSolution evaluates the self-similar solution on the ray
// x/t = 0 once the star pressure and both star states are known. It
// classifies each of the two nonlinear waves as a shock or a
// rarefaction fan, decides which of the four regions (left state, left
// star, right star, right state) the ray falls in, and — when the ray
// falls inside a rarefaction fan itself — walks the isentropic profile
// to the exact point where the local characteristic speed is zero.
// Tangential velocity components are upwinded from whichever original
// state the sampled material id is drawn from.
func sampleSolution(capL, capR eos.Capability, left, right PrimitiveState, dir Axis, pStar, rhoStarL, uStarL, rhoStarR, uStarR float64, cfg Config, ps *probeState) Result {
	uStar := 0.5 * (uStarL + uStarR)

	var v PrimitiveState
	var materialID int
	diag := Diagnostics{}

	if uStar >= 0 {
		v, materialID, diag.TransonicRarefaction = sampleLeftSide(capL, left, dir, pStar, rhoStarL, uStarL, uStar, cfg, ps)
	} else {
		v, materialID, diag.TransonicRarefaction = sampleRightSide(capR, right, dir, pStar, rhoStarR, uStarR, uStar, cfg, ps)
	}

	if uStar == 0 {
		// The contact sits exactly on x/t = 0: neither side's tangential
		// velocity is the uniquely correct one, so average them, matching
		// the original solver's FinalizeSolution handling of this case.
		for k := 0; k < 3; k++ {
			if Axis(k) == dir {
				continue
			}
			v.U[k] = 0.5 * (left.U[k] + right.U[k])
		}
	}

	vsm := left.withNormal(dir, uStarL)
	vsm.Rho, vsm.P, vsm.MaterialID = rhoStarL, pStar, left.MaterialID
	vsp := right.withNormal(dir, uStarR)
	vsp.Rho, vsp.P, vsp.MaterialID = rhoStarR, pStar, right.MaterialID

	diag.Trace = finalizeProfile(ps.trace)
	diag.ApproximateLeft = ps.approximateLeft
	diag.ApproximateRight = ps.approximateRight

	return Result{V: v, MaterialID: materialID, Vsm: vsm, Vsp: vsp, Diagnostics: diag}
}

// sampleLeftSide handles uStar >= 0: the ray lies at or to the left of
// the contact, so the relevant wave is the 1-wave connecting the known
// left state to the left star state.
func sampleLeftSide(capL eos.Capability, left PrimitiveState, dir Axis, pStar, rhoStarL, uStarL, uStar float64, cfg Config, ps *probeState) (v PrimitiveState, materialID int, transonic bool) {
	rhoL, uL, pL := left.Rho, left.Un(dir), left.P
	eL := capL.InternalEnergy(rhoL, pL)
	cL := math.Sqrt(math.Max(0, capL.SoundSpeedSquared(rhoL, eL)))

	if pStar > pL {
		// Left shock: the single wave speed follows from mass
		// conservation across the jump in the wave's own frame,
		// rho0*(u0-S) = rhoStarL*(uStarL-S), which holds for any EOS
		// (no closed-form Mach-number relation is needed).
		S := (rhoL*uL - rhoStarL*uStarL) / (rhoL - rhoStarL)
		if 0 < S {
			return left, left.MaterialID, false
		}
		return left.withNormal(dir, uStarL).setState(rhoStarL, pStar, left.MaterialID), left.MaterialID, false
	}

	// Left rarefaction fan.
	eStarL := capL.InternalEnergy(rhoStarL, pStar)
	cStarL := math.Sqrt(math.Max(0, capL.SoundSpeedSquared(rhoStarL, eStarL)))
	headSpeed := uL - cL
	tailSpeed := uStarL - cStarL

	if headSpeed >= 0 {
		return left, left.MaterialID, false
	}
	if tailSpeed <= 0 {
		return left.withNormal(dir, uStarL).setState(rhoStarL, pStar, left.MaterialID), left.MaterialID, false
	}

	rho, u, p, ok := walkFanToZero(capL, wave1, rhoL, uL, pL, cfg.NumStepsRarefaction)
	if !ok {
		rho, u, p = rhoStarL, uStarL, pStar
	}
	ps.record(0, rho, u, p, capL, left.MaterialID)
	return left.withNormal(dir, u).setState(rho, p, left.MaterialID), left.MaterialID, true
}

// sampleRightSide is the mirror of sampleLeftSide for uStar < 0.
func sampleRightSide(capR eos.Capability, right PrimitiveState, dir Axis, pStar, rhoStarR, uStarR, uStar float64, cfg Config, ps *probeState) (v PrimitiveState, materialID int, transonic bool) {
	rhoR, uR, pR := right.Rho, right.Un(dir), right.P
	eR := capR.InternalEnergy(rhoR, pR)
	cR := math.Sqrt(math.Max(0, capR.SoundSpeedSquared(rhoR, eR)))

	if pStar > pR {
		S := (rhoR*uR - rhoStarR*uStarR) / (rhoR - rhoStarR)
		if 0 > S {
			return right, right.MaterialID, false
		}
		return right.withNormal(dir, uStarR).setState(rhoStarR, pStar, right.MaterialID), right.MaterialID, false
	}

	eStarR := capR.InternalEnergy(rhoStarR, pStar)
	cStarR := math.Sqrt(math.Max(0, capR.SoundSpeedSquared(rhoStarR, eStarR)))
	headSpeed := uR + cR
	tailSpeed := uStarR + cStarR

	if headSpeed <= 0 {
		return right, right.MaterialID, false
	}
	if tailSpeed >= 0 {
		return right.withNormal(dir, uStarR).setState(rhoStarR, pStar, right.MaterialID), right.MaterialID, false
	}

	rho, u, p, ok := walkFanToZero(capR, wave3, rhoR, uR, pR, cfg.NumStepsRarefaction)
	if !ok {
		rho, u, p = rhoStarR, uStarR, pStar
	}
	ps.record(0, rho, u, p, capR, right.MaterialID)
	return right.withNormal(dir, u).setState(rho, p, right.MaterialID), right.MaterialID, true
}

// walkFanToZero integrates the isentropic rarefaction path outward
// from the known state, a small density step at a time, until the
// local characteristic speed u -/+ c crosses zero, bisecting the last
// step to land on it within the rarefaction tolerance's spirit (a
// fixed step count here, since this is purely a diagnostic sample
// point and not part of the pressure iteration).
func walkFanToZero(capability eos.Capability, w wave, rho0, u0, p0 float64, numSteps int) (rho, u, p float64, ok bool) {
	rho, u, p = rho0, u0, p0
	speed := func(rho, u, p float64) float64 {
		e := capability.InternalEnergy(rho, p)
		c := math.Sqrt(math.Max(0, capability.SoundSpeedSquared(rho, e)))
		return u + float64(w)*c
	}

	step := rho0 / float64(numSteps)
	if step <= 0 {
		return rho0, u0, p0, false
	}
	// The fan is traversed by decreasing density away from rho0 for
	// wave1 sampled from the left (w = -1) when moving from the head
	// toward the tail; the direction of travel in density is always
	// toward smaller rho as we move from the known state into the fan.
	dir := -1.0
	for i := 0; i < numSteps; i++ {
		s0 := speed(rho, u, p)
		nrho, nu, np, stepOK := rarefactionStepRK4(capability, w, rho, u, p, dir*step)
		if !stepOK || nrho <= 1e-14 {
			return rho, u, p, true
		}
		s1 := speed(nrho, nu, np)
		if (s0 <= 0) != (s1 <= 0) {
			// Bisect between (rho,u,p) and (nrho,nu,np) for the zero
			// crossing of the characteristic speed.
			lo, hi := 0.0, 1.0
			for j := 0; j < 40; j++ {
				mid := 0.5 * (lo + hi)
				mrho, mu, mp, midOK := rarefactionStepRK4(capability, w, rho, u, p, dir*step*mid)
				if !midOK {
					hi = mid
					continue
				}
				if (speed(mrho, mu, mp) <= 0) == (s0 <= 0) {
					lo = mid
				} else {
					hi = mid
				}
			}
			mid := 0.5 * (lo + hi)
			mrho, mu, mp, midOK := rarefactionStepRK4(capability, w, rho, u, p, dir*step*mid)
			if midOK {
				return mrho, mu, mp, true
			}
			return nrho, nu, np, true
		}
		rho, u, p = nrho, nu, np
	}
	return rho, u, p, true
}

func (v PrimitiveState) setState(rho, p float64, materialID int) PrimitiveState {
	v.Rho = rho
	v.P = p
	v.MaterialID = materialID
	return v
}
