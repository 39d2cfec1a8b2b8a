package riemann

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/notargets/exactriemann/eos"
)

func airTable() *eos.Table {
	return eos.NewTable([]eos.Capability{eos.StiffenedGas{Gamma: 1.4}})
}

func state(rho, u, p float64) PrimitiveState {
	return PrimitiveState{Rho: rho, U: [3]float64{u, 0, 0}, P: p, MaterialID: 0}
}

// The five scenarios below are the standard Toro shock-tube test
// battery for the compressible Euler equations with an ideal gas
// (gamma = 1.4): the Sod tube, the two-rarefaction "123 problem", a
// strong single shock, a head-on collision producing two shocks, and a
// transonic left rarefaction. Reference p* and u* are the published
// exact values; tolerances are loose enough to allow for this solver's
// own root-finding tolerance rather than bit-for-bit reproduction.
func TestSolveEndToEndScenarios(t *testing.T) {
	table := airTable()
	solver := NewSolver(DefaultConfig(), table)

	cases := []struct {
		name      string
		left      PrimitiveState
		right     PrimitiveState
		pStar     float64
		uStar     float64
		transonic bool
	}{
		{
			name:  "sod",
			left:  state(1.0, 0.0, 1.0),
			right: state(0.125, 0.0, 0.1),
			pStar: 0.30313,
			uStar: 0.92745,
		},
		{
			name:  "123 problem",
			left:  state(1.0, -2.0, 0.4),
			right: state(1.0, 2.0, 0.4),
			pStar: 0.00189,
			uStar: 0.0,
		},
		{
			name:  "strong shock",
			left:  state(1.0, 0.0, 1000.0),
			right: state(1.0, 0.0, 0.01),
			pStar: 460.894,
			uStar: 19.5975,
		},
		{
			name:  "collision",
			left:  state(5.99924, 19.5975, 460.894),
			right: state(5.99242, -6.19633, 46.0950),
			pStar: 1691.64,
			uStar: 8.68977,
		},
		{
			name:      "transonic rarefaction",
			left:      state(1.0, -19.59745, 1000.0),
			right:     state(1.0, -19.59745, 0.01),
			pStar:     0.0, // sign only: this scenario is checked by its fan flag, not a reference pStar
			uStar:     0.0,
			transonic: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := solver.Solve(AxisX, tc.left, tc.right)
			require.NoError(t, err)

			if tc.name != "transonic rarefaction" {
				assert.InDelta(t, tc.pStar, result.Vsm.P, math.Max(1e-2, 0.01*tc.pStar))
				assert.InDelta(t, tc.uStar, result.Vsm.U[0], 1e-2)
				assert.InDelta(t, tc.pStar, result.Vsp.P, math.Max(1e-2, 0.01*tc.pStar))
			}

			assert.Greater(t, result.Vsm.Rho, 0.0)
			assert.Greater(t, result.Vsp.Rho, 0.0)
			assert.Greater(t, result.V.Rho, 0.0)

			if tc.transonic {
				assert.True(t, result.Diagnostics.TransonicRarefaction, "expected the sample point to fall inside the left rarefaction fan")
			}
		})
	}
}

func TestSolveTrivialCaseShortcut(t *testing.T) {
	table := airTable()
	solver := NewSolver(DefaultConfig(), table)

	left := state(1.2, 3.0, 2.0)
	right := state(1.2, 3.0, 2.0)
	result, err := solver.Solve(AxisX, left, right)
	require.NoError(t, err)
	assert.Equal(t, left, result.V)
	assert.Equal(t, left, result.Vsm)
	assert.Equal(t, right, result.Vsp)
	assert.Empty(t, result.Diagnostics.Warning)
}

func TestSolveRejectsNonphysicalInput(t *testing.T) {
	table := airTable()
	solver := NewSolver(DefaultConfig(), table)

	_, err := solver.Solve(AxisX, state(-1.0, 0, 1.0), state(1.0, 0, 1.0))
	require.Error(t, err)
	var rerr *RiemannError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, NonphysicalProbe, rerr.Kind)
}

func TestSolveRejectsOutOfRangeMaterialID(t *testing.T) {
	table := airTable()
	solver := NewSolver(DefaultConfig(), table)

	left := state(1.0, 0, 1.0)
	left.MaterialID = 5
	_, err := solver.Solve(AxisX, left, state(1.0, 0, 1.0))
	require.Error(t, err)
}

// Contact discontinuity invariant: pressure and normal velocity must
// agree across the contact to machine-tolerance, regardless of which
// material sits on each side.
func TestStarStatesAgreeAcrossContact(t *testing.T) {
	table := airTable()
	solver := NewSolver(DefaultConfig(), table)

	result, err := solver.Solve(AxisX, state(1.0, 0.0, 1.0), state(0.125, 0.0, 0.1))
	require.NoError(t, err)
	assert.True(t, scalar.EqualWithinAbsOrRel(result.Vsm.P, result.Vsp.P, 1e-6, 1e-6))
	assert.True(t, scalar.EqualWithinAbsOrRel(result.Vsm.U[0], result.Vsp.U[0], 1e-6, 1e-6))
}

// Tangential velocity upwinding: the in-plane components never mix
// across the contact, they are carried from whichever original state
// the sampled material id comes from.
func TestTangentialVelocityUpwinds(t *testing.T) {
	table := airTable()
	solver := NewSolver(DefaultConfig(), table)

	left := state(1.0, 0.0, 1.0)
	left.U[1], left.U[2] = 7.0, -3.0
	right := state(0.125, 0.0, 0.1)
	right.U[1], right.U[2] = -4.0, 2.0

	result, err := solver.Solve(AxisX, left, right)
	require.NoError(t, err)

	// This is the Sod tube: u* > 0, so x/t = 0 lies on the left side of
	// the contact and the tangential components must carry through from
	// the left state unchanged.
	assert.Equal(t, left.U[1], result.V.U[1])
	assert.Equal(t, left.U[2], result.V.U[2])
}

// Symmetry: swapping left and right and negating all normal velocities
// must negate the star normal velocity, swap the two star densities and
// leave the star pressure unchanged.
func TestSolveIsMirrorSymmetric(t *testing.T) {
	table := airTable()
	solver := NewSolver(DefaultConfig(), table)

	left := state(1.0, 0.3, 1.0)
	right := state(0.125, -0.1, 0.1)

	fwd, err := solver.Solve(AxisX, left, right)
	require.NoError(t, err)

	mirroredLeft := state(right.Rho, -right.Un(AxisX), right.P)
	mirroredRight := state(left.Rho, -left.Un(AxisX), left.P)
	rev, err := solver.Solve(AxisX, mirroredLeft, mirroredRight)
	require.NoError(t, err)

	assert.InDelta(t, fwd.Vsm.P, rev.Vsm.P, 1e-4)
	assert.InDelta(t, fwd.Vsm.Rho, rev.Vsp.Rho, 1e-4)
	assert.InDelta(t, fwd.Vsp.Rho, rev.Vsm.Rho, 1e-4)
	assert.InDelta(t, -fwd.Vsm.U[0], rev.Vsp.U[0], 1e-4)
}
