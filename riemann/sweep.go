package riemann

import (
	"fmt"
	"io"
	"math"
)

// SweepPoint is one row of a p* sweep: a trial star pressure and the
// velocity mismatch it produces, together with the star densities on
// each side.
type SweepPoint struct {
	P                  float64
	F                  float64
	RhoStarL, RhoStarR float64
}

// SweepStarRelations evaluates the velocity-mismatch function F(p) at
// numPoints pressures logarithmically spaced between pMin and pMax,
// without running the root finder at all. It is a diagnostic aid for
// visualizing or hand-inspecting the star relations near a suspected
// double root or a region with no bracket, the same debugging view the
// original solver's star-relation printout provides.
func (s *Solver) SweepStarRelations(dir Axis, left, right PrimitiveState, pMin, pMax float64, numPoints int) ([]SweepPoint, error) {
	if numPoints < 2 {
		return nil, fmt.Errorf("riemann: SweepStarRelations needs at least 2 points, got %d", numPoints)
	}
	if pMin <= 0 || pMax <= pMin {
		return nil, fmt.Errorf("riemann: SweepStarRelations needs 0 < pMin < pMax, got pMin=%g pMax=%g", pMin, pMax)
	}

	capL := s.table.At(left.MaterialID)
	capR := s.table.At(right.MaterialID)
	ps := newProbeState(false)

	logMin, logMax := math.Log(pMin), math.Log(pMax)
	points := make([]SweepPoint, 0, numPoints)
	for i := 0; i < numPoints; i++ {
		t := float64(i) / float64(numPoints-1)
		p := math.Exp(logMin + t*(logMax-logMin))
		probe := evalVelocityMismatch(capL, capR, left, right, dir, p, s.cfg, ps)
		if !probe.ok {
			continue
		}
		points = append(points, SweepPoint{P: probe.p, F: probe.f, RhoStarL: probe.rhoStarL, RhoStarR: probe.rhoStarR})
	}
	return points, nil
}

// WriteStarRelations writes a sweep's points as a fixed-width table,
// the same column layout the original star-relation printout used.
func WriteStarRelations(w io.Writer, points []SweepPoint) error {
	if _, err := fmt.Fprintf(w, "%-16s %-16s %-16s %-16s\n", "p*", "F(p*)", "rho*_L", "rho*_R"); err != nil {
		return err
	}
	for _, pt := range points {
		if _, err := fmt.Fprintf(w, "%-16.6e %-16.6e %-16.6e %-16.6e\n", pt.P, pt.F, pt.RhoStarL, pt.RhoStarR); err != nil {
			return err
		}
	}
	return nil
}
