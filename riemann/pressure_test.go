package riemann

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/exactriemann/eos"
)

func TestAcousticGuessMatchesEqualStateCase(t *testing.T) {
	gas := eos.StiffenedGas{Gamma: 1.4}
	p0, ok := acousticGuess(gas, gas, 1.0, 0.0, 1.0, 1.0, 0.0, 1.0, 1e-8)
	require.True(t, ok)
	assert.InDelta(t, 1.0, p0, 1e-9)
}

func TestEvalVelocityMismatchVanishesAtTrueStarPressure(t *testing.T) {
	gas := eos.StiffenedGas{Gamma: 1.4}
	left := state(1.0, 0.0, 1.0)
	right := state(0.125, 0.0, 0.1)
	ps := newProbeState(false)

	probe := evalVelocityMismatch(gas, gas, left, right, AxisX, 0.30313, DefaultConfig(), ps)
	require.True(t, probe.ok)
	assert.InDelta(t, 0.0, probe.f, 1e-3)
}

func TestSolvePressureConvergesOnSodTube(t *testing.T) {
	gas := eos.StiffenedGas{Gamma: 1.4}
	left := state(1.0, 0.0, 1.0)
	right := state(0.125, 0.0, 0.1)
	ps := newProbeState(false)

	pStar, probe, err := solvePressure(gas, gas, left, right, AxisX, DefaultConfig(), ps)
	require.NoError(t, err)
	assert.InDelta(t, 0.30313, pStar, 1e-3)
	assert.InDelta(t, probe.uStarL, probe.uStarR, 1e-6)
}
