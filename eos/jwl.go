package eos

import "math"

// JWL implements a Jones-Wilkins-Lee equation of state for detonation
// products:
//
//	p(rho,e) = f1(rho) + f2(rho) + Omega*rho*e
//	f1(rho)  = A*(1 - Omega*rho/(R1*Rho0)) * exp(-R1*Rho0/rho)
//	f2(rho)  = B*(1 - Omega*rho/(R2*Rho0)) * exp(-R2*Rho0/rho)
type JWL struct {
	A, B   float64
	R1, R2 float64
	Omega  float64
	Rho0   float64
}

var _ Capability = JWL{}

func (j JWL) f(amp, r float64, rho float64) float64 {
	k := j.Omega / (r * j.Rho0)
	c := r * j.Rho0
	return amp * (1 - k*rho) * math.Exp(-c/rho)
}

func (j JWL) dfDRho(amp, r float64, rho float64) float64 {
	k := j.Omega / (r * j.Rho0)
	c := r * j.Rho0
	e := math.Exp(-c / rho)
	return amp * e * (-k + (1-k*rho)*c/(rho*rho))
}

func (j JWL) fSum(rho float64) float64 {
	return j.f(j.A, j.R1, rho) + j.f(j.B, j.R2, rho)
}

func (j JWL) dfSumDRho(rho float64) float64 {
	return j.dfDRho(j.A, j.R1, rho) + j.dfDRho(j.B, j.R2, rho)
}

func (j JWL) InternalEnergy(rho, p float64) float64 {
	return (p - j.fSum(rho)) / (j.Omega * rho)
}

func (j JWL) SoundSpeedSquared(rho, e float64) float64 {
	p := j.fSum(rho) + j.Omega*rho*e
	dpdrho := j.DPDRho(rho, e)
	return dpdrho + j.Omega*p/rho
}

func (j JWL) DPDRho(rho, e float64) float64 {
	return j.dfSumDRho(rho) + j.Omega*e
}

func (j JWL) CheckState(rho, p float64) bool {
	if rho <= 0 || j.Omega <= 0 {
		return true
	}
	e := j.InternalEnergy(rho, p)
	c2 := j.SoundSpeedSquared(rho, e)
	return c2 < 0 || math.IsNaN(c2)
}
