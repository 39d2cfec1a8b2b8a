package eos

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/diff/fd"
)

func TestStiffenedGasIdealGasRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rho  float64
		p    float64
	}{
		{"sod left", 1.0, 1.0},
		{"sod right", 0.125, 0.1},
		{"strong shock left", 1.0, 1000.0},
		{"strong shock right", 1.0, 0.01},
	}
	g := StiffenedGas{Gamma: 1.4}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := g.InternalEnergy(tt.rho, tt.p)
			c2 := g.SoundSpeedSquared(tt.rho, e)
			assert.Greater(t, c2, 0.0)
			assert.InDelta(t, math.Sqrt(1.4*tt.p/tt.rho), math.Sqrt(c2), 1e-9)
			assert.False(t, g.CheckState(tt.rho, tt.p))
		})
	}
}

func TestStiffenedGasDPDRhoMatchesFiniteDifference(t *testing.T) {
	g := StiffenedGas{Gamma: 1.4}
	rho, p := 1.0, 1.0
	e := g.InternalEnergy(rho, p)
	analytic := g.DPDRho(rho, e)

	numeric := fd.Derivative(func(r float64) float64 {
		return (g.Gamma-1)*r*e - g.Gamma*g.PRef
	}, rho, &fd.Settings{Formula: fd.Central})

	assert.InDelta(t, numeric, analytic, 1e-6)
}

func TestStiffenedGasNonphysical(t *testing.T) {
	g := StiffenedGas{Gamma: 1.4}
	assert.True(t, g.CheckState(-1.0, 1.0))
	assert.True(t, g.CheckState(1.0, -2.0))
}

func TestMieGruneisenInternalEnergyInvertsPressure(t *testing.T) {
	m := MieGruneisen{Rho0: 2700, C0: 5328, S: 1.338, Gamma0: 2.0}
	for _, rho := range []float64{2700, 2800, 3000, 2600} {
		e := 1000.0
		p := m.pHugoniot(rho) + m.Gamma0*rho*(e-m.eHugoniot(rho))
		eBack := m.InternalEnergy(rho, p)
		assert.InDelta(t, e, eBack, 1e-6)
	}
}

func TestMieGruneisenDPDRhoMatchesFiniteDifference(t *testing.T) {
	m := MieGruneisen{Rho0: 2700, C0: 5328, S: 1.338, Gamma0: 2.0}
	rho, e := 2800.0, 1000.0
	analytic := m.DPDRho(rho, e)

	pAt := func(r float64) float64 {
		return m.pHugoniot(r) + m.Gamma0*r*(e-m.eHugoniot(r))
	}
	numeric := fd.Derivative(pAt, rho, &fd.Settings{Formula: fd.Central, Step: 1e-2})
	assert.InDelta(t, numeric, analytic, 1e-2)
}

func TestJWLInternalEnergyInvertsPressure(t *testing.T) {
	j := JWL{A: 609.77e9, B: 12.95e9, R1: 4.94, R2: 1.21, Omega: 0.25, Rho0: 1630}
	for _, rho := range []float64{1630, 1500, 1700} {
		e := 1e6
		p := j.fSum(rho) + j.Omega*rho*e
		eBack := j.InternalEnergy(rho, p)
		assert.InDelta(t, e, eBack, 1e-3)
	}
}

func TestJWLDPDRhoMatchesFiniteDifference(t *testing.T) {
	j := JWL{A: 609.77e9, B: 12.95e9, R1: 4.94, R2: 1.21, Omega: 0.25, Rho0: 1630}
	rho, e := 1650.0, 1e6
	analytic := j.DPDRho(rho, e)

	pAt := func(r float64) float64 {
		return j.fSum(r) + j.Omega*r*e
	}
	numeric := fd.Derivative(pAt, rho, &fd.Settings{Formula: fd.Central, Step: 1e-3})
	assert.InDelta(t, numeric, analytic, 1.0)
}
