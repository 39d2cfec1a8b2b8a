package riemann

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/exactriemann/eos"
)

func TestRarefactionStepRK4ConservesIsentrope(t *testing.T) {
	gas := eos.StiffenedGas{Gamma: 1.4}
	rho0, u0, p0 := 1.0, 0.0, 1.0

	rho, u, p, ok := rarefactionStepRK4(gas, wave1, rho0, u0, p0, -0.01)
	require.True(t, ok)

	// Along an isentrope for an ideal gas, p/rho^gamma is constant; one
	// small RK4 step should preserve it to within its own local
	// truncation error.
	k0 := p0 / math.Pow(rho0, gas.Gamma)
	k1 := p / math.Pow(rho, gas.Gamma)
	assert.InDelta(t, k0, k1, 1e-6)
	assert.Greater(t, u, u0) // wave1: du/drho = -c/rho, so velocity rises as the step lowers density
}

func TestRarefactionStepRK4RejectsNonphysicalProbe(t *testing.T) {
	gas := eos.StiffenedGas{Gamma: 1.4}
	_, _, _, ok := rarefactionStepRK4(gas, wave1, 1e-10, 0.0, 1e-10, -1.0)
	assert.False(t, ok)
}

func TestRarefactionWalkNoOpWhenTargetNotBelowP0(t *testing.T) {
	gas := eos.StiffenedGas{Gamma: 1.4}
	rho, u, p, approx, ok := rarefactionWalk(gas, wave1, 1.0, 0.0, 1.0, 1.0, 100, 1e-6)
	require.True(t, ok)
	assert.False(t, approx)
	assert.Equal(t, 1.0, rho)
	assert.Equal(t, 0.0, u)
	assert.Equal(t, 1.0, p)
}

func TestRarefactionWalkConvergesToTargetPressure(t *testing.T) {
	gas := eos.StiffenedGas{Gamma: 1.4}
	rho, _, p, _, ok := rarefactionWalk(gas, wave1, 1.0, 0.0, 1.0, 0.3, 200, 1e-8)
	require.True(t, ok)
	assert.InDelta(t, 0.3, p, 1e-6)
	assert.Less(t, rho, 1.0)
}
