package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/notargets/exactriemann/materials"
	"github.com/notargets/exactriemann/riemann"
	"github.com/notargets/exactriemann/utils"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a single two-material Riemann problem",
	Long: `
Solves the Riemann problem posed by a left and a right primitive state
(density, normal velocity, pressure, material id) and reports the
state on x/t = 0 along with the two star states.

exactriemann solve --left 1,0,1,0 --right 0.125,0,0.1,0`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().String("left", "1,0,1,0", "left state: rho,u,p,materialID")
	solveCmd.Flags().String("right", "0.125,0,0.1,0", "right state: rho,u,p,materialID")
	solveCmd.Flags().String("materials", "", "path to a YAML material catalogue (default: single ideal gas, gamma=1.4)")
	solveCmd.Flags().String("config", "~/.exactriemann.yaml", "path to a YAML solver tunables file")
	solveCmd.Flags().Bool("sweep", false, "print a p* sweep table instead of solving")
	solveCmd.Flags().Int("sweep-points", 50, "number of points in the sweep table")
	solveCmd.Flags().Bool("graph", false, "plot the wave profile")
}

func runSolve(cmd *cobra.Command, args []string) error {
	leftStr, _ := cmd.Flags().GetString("left")
	rightStr, _ := cmd.Flags().GetString("right")
	materialsPath, _ := cmd.Flags().GetString("materials")
	configPath, _ := cmd.Flags().GetString("config")
	sweep, _ := cmd.Flags().GetBool("sweep")
	sweepPoints, _ := cmd.Flags().GetInt("sweep-points")
	graph, _ := cmd.Flags().GetBool("graph")

	left, err := parseState(leftStr)
	if err != nil {
		return fmt.Errorf("--left: %w", err)
	}
	right, err := parseState(rightStr)
	if err != nil {
		return fmt.Errorf("--right: %w", err)
	}

	catalogue := materials.DefaultCatalogue()
	if materialsPath != "" {
		data, readErr := os.ReadFile(materialsPath)
		if readErr != nil {
			return fmt.Errorf("reading --materials: %w", readErr)
		}
		catalogue = &materials.Catalogue{}
		if err := catalogue.Parse(data); err != nil {
			return fmt.Errorf("parsing --materials: %w", err)
		}
	}
	table, err := catalogue.Build()
	if err != nil {
		return fmt.Errorf("building material table: %w", err)
	}

	cfg := riemann.DefaultConfig()
	if expanded, expandErr := homedir.Expand(configPath); expandErr == nil {
		if data, readErr := os.ReadFile(expanded); readErr == nil {
			if parseErr := cfg.Parse(data); parseErr != nil {
				return fmt.Errorf("parsing --config: %w", parseErr)
			}
		}
	}

	solver := riemann.NewSolver(cfg, table)

	if sweep {
		pMin := 0.01 * min(left.P, right.P)
		pMax := 100 * max(left.P, right.P)
		points, err := solver.SweepStarRelations(riemann.AxisX, left, right, pMin, pMax, sweepPoints)
		if err != nil {
			return err
		}
		return riemann.WriteStarRelations(os.Stdout, points)
	}

	result, err := solver.Solve(riemann.AxisX, left, right)
	if err != nil {
		return err
	}

	fmt.Printf("state at x/t=0: rho=%.6g u=%.6g p=%.6g material=%d\n", result.V.Rho, result.V.Un(riemann.AxisX), result.V.P, result.MaterialID)
	fmt.Printf("left star:      rho=%.6g u=%.6g p=%.6g\n", result.Vsm.Rho, result.Vsm.Un(riemann.AxisX), result.Vsm.P)
	fmt.Printf("right star:     rho=%.6g u=%.6g p=%.6g\n", result.Vsp.Rho, result.Vsp.Un(riemann.AxisX), result.Vsp.P)
	if result.Diagnostics.TransonicRarefaction {
		fmt.Println("note: x/t=0 falls inside a transonic rarefaction fan")
	}
	if result.Diagnostics.Warning != "" {
		fmt.Println("warning:", result.Diagnostics.Warning)
	}

	if graph {
		plotProfile(result)
	}
	return nil
}

// parseState decodes a "rho,u,p,materialID" flag value into a
// PrimitiveState, with the normal velocity placed in U[0] and
// materialID defaulting to 0 when omitted.
func parseState(s string) (riemann.PrimitiveState, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 3 || len(parts) > 4 {
		return riemann.PrimitiveState{}, fmt.Errorf("expected rho,u,p[,materialID], got %q", s)
	}
	rho, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return riemann.PrimitiveState{}, err
	}
	u, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return riemann.PrimitiveState{}, err
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return riemann.PrimitiveState{}, err
	}
	materialID := 0
	if len(parts) == 4 {
		materialID, err = strconv.Atoi(strings.TrimSpace(parts[3]))
		if err != nil {
			return riemann.PrimitiveState{}, err
		}
	}
	return riemann.PrimitiveState{Rho: rho, U: [3]float64{u, 0, 0}, P: p, MaterialID: materialID}, nil
}

// plotProfile renders the solution's recorded wave profile (only
// populated when the solver's TraceProfile tunable is set) using the
// same chart wrapper the rest of this module uses for line plots.
func plotProfile(result riemann.Result) {
	if len(result.Diagnostics.Trace) == 0 {
		fmt.Println("note: --graph requires trace_profile: true in --config to record a profile")
		return
	}
	n := len(result.Diagnostics.Trace)
	xi := make([]float64, n)
	rho := make([]float64, n)
	for i, pt := range result.Diagnostics.Trace {
		xi[i] = pt.Xi
		rho[i] = pt.Rho
	}
	lc := utils.NewLineChart(1280, 720, xi[0], xi[n-1], 0, 2*max(result.Vsm.Rho, result.Vsp.Rho))
	lc.Plot(0, xi, rho, 0, "rho")
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
