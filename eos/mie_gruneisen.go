package eos

import "math"

// MieGruneisen implements a Mie-Grüneisen equation of state built on a
// linear shock-velocity/particle-velocity (Us-Up) Hugoniot reference
// curve, the closure commonly used for metals and other solids:
//
//	mu      = rho/Rho0 - 1
//	p_H(mu) = Rho0*C0^2*mu*(1+mu) / (1 - (S-1)*mu)^2     (mu >= 0)
//	p_H(mu) = Rho0*C0^2*mu                                (mu <  0)
//	e_H(mu) = p_H(mu) * mu / (2*Rho0*(1+mu))
//	p(rho,e) = p_H(rho) + Gamma0*rho*(e - e_H(rho))
type MieGruneisen struct {
	Rho0   float64
	C0     float64
	S      float64
	Gamma0 float64
}

var _ Capability = MieGruneisen{}

func (m MieGruneisen) mu(rho float64) float64 {
	return rho/m.Rho0 - 1
}

func (m MieGruneisen) pHugoniot(rho float64) float64 {
	mu := m.mu(rho)
	if mu < 0 {
		return m.Rho0 * m.C0 * m.C0 * mu
	}
	denom := 1 - (m.S-1)*mu
	return m.Rho0 * m.C0 * m.C0 * mu * (1 + mu) / (denom * denom)
}

// dpHugoniotDRho is d(p_H)/d(rho).
func (m MieGruneisen) dpHugoniotDRho(rho float64) float64 {
	mu := m.mu(rho)
	dmudrho := 1 / m.Rho0
	if mu < 0 {
		return m.Rho0 * m.C0 * m.C0 * dmudrho
	}
	denom := 1 - (m.S-1)*mu
	// p_H = Rho0*C0^2 * mu*(1+mu) / denom^2 ; differentiate w.r.t. mu then chain to rho.
	num := mu * (1 + mu)
	dnumDmu := 1 + 2*mu
	ddenomDmu := -(m.S - 1)
	dpHdMu := m.Rho0 * m.C0 * m.C0 * (dnumDmu*denom*denom - num*2*denom*ddenomDmu) / (denom * denom * denom * denom)
	return dpHdMu * dmudrho
}

func (m MieGruneisen) eHugoniot(rho float64) float64 {
	mu := m.mu(rho)
	pH := m.pHugoniot(rho)
	return pH * mu / (2 * m.Rho0 * (1 + mu))
}

// deHugoniotDRho is d(e_H)/d(rho), obtained by differentiating
// e_H = p_H*mu / (2*Rho0*(1+mu)) through the product and quotient rules.
func (m MieGruneisen) deHugoniotDRho(rho float64) float64 {
	mu := m.mu(rho)
	dmudrho := 1 / m.Rho0
	pH := m.pHugoniot(rho)
	dpH := m.dpHugoniotDRho(rho)

	num := pH * mu
	dNumDRho := dpH*mu + pH*dmudrho
	den := 2 * m.Rho0 * (1 + mu)
	dDenDRho := 2 * m.Rho0 * dmudrho

	return (dNumDRho*den - num*dDenDRho) / (den * den)
}

func (m MieGruneisen) InternalEnergy(rho, p float64) float64 {
	return m.eHugoniot(rho) + (p-m.pHugoniot(rho))/(m.Gamma0*rho)
}

func (m MieGruneisen) SoundSpeedSquared(rho, e float64) float64 {
	dpdrho := m.DPDRho(rho, e)
	p := m.pHugoniot(rho) + m.Gamma0*rho*(e-m.eHugoniot(rho))
	return dpdrho + m.Gamma0*p/rho
}

func (m MieGruneisen) DPDRho(rho, e float64) float64 {
	eH := m.eHugoniot(rho)
	deH := m.deHugoniotDRho(rho)
	return m.dpHugoniotDRho(rho) + m.Gamma0*e - m.Gamma0*(eH+rho*deH)
}

func (m MieGruneisen) CheckState(rho, p float64) bool {
	if rho <= 0 || m.Gamma0 <= 0 {
		return true
	}
	e := m.InternalEnergy(rho, p)
	c2 := m.SoundSpeedSquared(rho, e)
	return c2 < 0 || math.IsNaN(c2)
}
