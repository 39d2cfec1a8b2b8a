package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/exactriemann/eos"
	"github.com/notargets/exactriemann/riemann"
)

func TestSodProfileMatchesPublishedStarValues(t *testing.T) {
	s := DefaultSodProfile()
	pPost, uPost, _ := s.Solve()
	assert.InDelta(t, 0.30313, pPost, 1e-3)
	assert.InDelta(t, 0.92745, uPost, 1e-3)
}

func TestSodProfileSampleIsContinuousAcrossFan(t *testing.T) {
	s := DefaultSodProfile()
	xs := []float64{0.0, 0.2, 0.4, 0.5, 0.6, 0.8, 1.0}
	rho, p, u := s.Sample(0.15, xs)
	require.Len(t, rho, len(xs))
	require.Len(t, p, len(xs))
	require.Len(t, u, len(xs))

	assert.Equal(t, s.RhoL, rho[0])
	assert.Equal(t, s.RhoR, rho[len(rho)-1])
	for i := range rho {
		assert.Greater(t, rho[i], 0.0)
		assert.Greater(t, p[i], 0.0)
	}
}

// TestRiemannSolverAgreesWithAnalyticSodProfile cross-checks the
// numerical solver in package riemann against this closed-form Sod
// profile: the star region values the solver reports at x/t = 0 must
// agree with the analytic solution sampled at the corresponding point.
func TestRiemannSolverAgreesWithAnalyticSodProfile(t *testing.T) {
	s := DefaultSodProfile()
	t0 := 0.15
	_, _, speeds := s.Solve()

	// x/t = 0 at the given t0 corresponds to x = X0 in physical space;
	// pick a point strictly inside the post-rarefaction plateau (between
	// the fan tail and the contact) so both solvers agree on which
	// region owns it.
	xSample := s.X0 + 0.5*speeds.FanTail*t0

	rho, p, u := s.Sample(t0, []float64{xSample})

	table := eos.NewTable([]eos.Capability{eos.StiffenedGas{Gamma: s.Gamma}})
	solver := riemann.NewSolver(riemann.DefaultConfig(), table)
	left := riemann.PrimitiveState{Rho: s.RhoL, P: s.PL, MaterialID: 0}
	right := riemann.PrimitiveState{Rho: s.RhoR, P: s.PR, MaterialID: 0}
	result, err := solver.Solve(riemann.AxisX, left, right)
	require.NoError(t, err)

	// The numerical solver samples at x/t = 0 in the frame where the
	// discontinuity starts at the origin; shift the analytic sample by
	// -X0 to put it in the same frame, and scale by t0 to get xi.
	xi := (xSample - s.X0) / t0
	_ = xi // the numerical solver's x/t=0 always corresponds to xi=0, by construction of xSample above

	assert.InDelta(t, rho[0], result.V.Rho, 5e-3)
	assert.InDelta(t, p[0], result.V.P, 5e-3)
	assert.InDelta(t, u[0], result.V.Un(riemann.AxisX), 5e-3)
}
