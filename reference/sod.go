// Package reference provides closed-form analytic solutions used to
// cross-check the numerical Riemann solver on problems where an exact
// formula is known independently of the root-finding machinery in
// package riemann. Today that is the classic ideal-gas Sod shock tube.
package reference

import (
	"math"

	"github.com/notargets/exactriemann/utils"
)

// SodProfile is the analytic self-similar solution of the ideal-gas
// (gamma = 1.4) Sod shock tube, sampled at a set of x positions for a
// fixed time t > 0. It follows the standard construction: solve for
// the post-shock pressure by a secant iteration on the shock jump
// condition, then classify each sample point by which of the five
// regions (undisturbed left, rarefaction fan, post-rarefaction
// plateau, post-shock plateau, undisturbed right) it falls in.
type SodProfile struct {
	RhoL, PL float64
	RhoR, PR float64
	Gamma    float64
	X0       float64 // initial discontinuity location
}

// DefaultSodProfile is Sod's original problem: rho_l=1, p_l=1,
// rho_r=0.125, p_r=0.1, gamma=1.4, discontinuity at x=0.5.
func DefaultSodProfile() SodProfile {
	return SodProfile{RhoL: 1, PL: 1, RhoR: 0.125, PR: 0.1, Gamma: 1.4, X0: 0.5}
}

// WaveSpeeds is the set of characteristic speeds bounding the Sod
// solution's regions at time t: the head and tail of the left
// rarefaction fan, the contact velocity, and the right shock speed.
type WaveSpeeds struct {
	FanHead, FanTail float64
	Contact          float64
	Shock            float64
}

// Solve returns the post-shock pressure, the contact velocity, and the
// wave speeds for this profile's parameters.
func (s SodProfile) Solve() (pPost, uPost float64, speeds WaveSpeeds) {
	gamma := s.Gamma
	mu2 := (gamma - 1) / (gamma + 1)
	cL := math.Sqrt(gamma * s.PL / s.RhoL)

	f := func(p float64) float64 {
		return (p-s.PR)*math.Sqrt(utils.POW(1-mu2, 2)/((1-mu2)*s.RhoR*(p+mu2*s.PR))) -
			2*(math.Sqrt(gamma)/(gamma-1))*(1-math.Pow(p, (gamma-1)/(2*gamma)))
	}
	pPost = newtonSecant(f, s.PR, s.PL)

	uPost = 2 / (gamma - 1) * (1 - math.Pow(pPost/s.PL, (gamma-1)/(2*gamma))) * cL
	rhoPost := s.RhoR * ((pPost/s.PR + mu2) / (1 + mu2*(pPost/s.PR)))
	shockSpeed := uPost * (rhoPost / s.RhoR) / (rhoPost/s.RhoR - 1)

	c2 := cL - 0.5*(gamma-1)*uPost
	speeds = WaveSpeeds{
		FanHead: -cL,
		FanTail: uPost - c2,
		Contact: uPost,
		Shock:   shockSpeed,
	}
	return pPost, uPost, speeds
}

// Sample evaluates the profile at the given x positions for time t.
func (s SodProfile) Sample(t float64, xs []float64) (rho, p, u []float64) {
	gamma := s.Gamma
	mu2 := (gamma - 1) / (gamma + 1)
	cL := math.Sqrt(gamma * s.PL / s.RhoL)
	pPost, uPost, speeds := s.Solve()
	rhoMiddle := s.RhoL * math.Pow(pPost/s.PL, 1/gamma)
	rhoPost := s.RhoR * ((pPost/s.PR + mu2) / (1 + mu2*(pPost/s.PR)))

	x1 := s.X0 + speeds.FanHead*t
	x2 := s.X0 + speeds.FanTail*t
	x3 := s.X0 + speeds.Contact*t
	x4 := s.X0 + speeds.Shock*t

	rho = make([]float64, len(xs))
	p = make([]float64, len(xs))
	u = make([]float64, len(xs))
	for i, x := range xs {
		switch {
		case x < x1:
			rho[i], p[i], u[i] = s.RhoL, s.PL, 0
		case x <= x2:
			c := mu2*((s.X0-x)/t) + (1-mu2)*cL
			rho[i] = s.RhoL * math.Pow(c/cL, 2/(gamma-1))
			p[i] = s.PL * math.Pow(rho[i]/s.RhoL, gamma)
			u[i] = (1 - mu2) * (-(s.X0-x)/t + cL)
		case x <= x3:
			rho[i], p[i], u[i] = rhoMiddle, pPost, uPost
		case x <= x4:
			rho[i], p[i], u[i] = rhoPost, pPost, uPost
		default:
			rho[i], p[i], u[i] = s.RhoR, s.PR, 0
		}
	}
	return
}

// newtonSecant finds a root of f using the plain secant method seeded
// by two starting points (the shock pressure equation has a single
// physically relevant root for p > p_r, so no bracketing is needed
// here).
func newtonSecant(f func(float64) float64, x0, x1 float64) float64 {
	const tol = 1e-10
	const maxIts = 200
	f0, f1 := f(x0), f(x1)
	for i := 0; i < maxIts && math.Abs(f1) > tol; i++ {
		if f1 == f0 {
			break
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		x0, f0 = x1, f1
		x1, f1 = x2, f(x2)
	}
	return x1
}
