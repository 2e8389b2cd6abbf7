package InputParameters

import (
	"fmt"
	"math"
	"sort"

	"github.com/ghodss/yaml"
	"github.com/notargets/rbfspline/RBF1D"
	"github.com/notargets/rbfspline/utils"
)

// Parameters obtained from the YAML input file
type SplineInput struct {
	Title          string        `json:"Title"`
	Centers        []float64     `json:"Centers"`
	Samples        []float64     `json:"Samples"`
	Transform      string        `json:"Transform"`      // identity (default) or log
	Regularization *float64      `json:"Regularization"` // nil selects RBF1D.DefaultRegularization
	Solver         string        `json:"Solver"`         // qr (default), svd or lu
	Rcond          float64       `json:"Rcond"`
	Evaluate       EvaluateRange `json:"Evaluate"`
}

type EvaluateRange struct {
	XMin   float64 `json:"XMin"`
	XMax   float64 `json:"XMax"`
	Points int     `json:"Points"`
}

// DefaultEvalPoints is used when the input has no Evaluate section
const DefaultEvalPoints = 101

func (ip *SplineInput) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *SplineInput) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t\t= Number of Centers\n", len(ip.Centers))
	fmt.Printf("[%s]\t\t\t= Transform\n", ip.transformName())
	if ip.Regularization == nil {
		fmt.Printf("%8.3e\t\t= Regularization (default)\n", RBF1D.DefaultRegularization)
	} else {
		fmt.Printf("%8.3e\t\t= Regularization\n", *ip.Regularization)
	}
	st, _ := utils.ParseSolverType(ip.Solver)
	fmt.Printf("[%s]\t\t\t= Solver\n", st.String())
	if ip.Rcond > 0 {
		fmt.Printf("%8.3e\t\t= Rcond\n", ip.Rcond)
	}
	x := ip.EvalPoints()
	if len(x) != 0 {
		fmt.Printf("[%8.5f, %8.5f] x %d\t= Evaluation Range\n", x[0], x[len(x)-1], len(x))
	}
}

func (ip *SplineInput) transformName() string {
	if ip.Transform == "" {
		return "identity"
	}
	return ip.Transform
}

func (ip *SplineInput) Validate() (err error) {
	switch {
	case len(ip.Centers) == 0:
		return fmt.Errorf("input has no centers")
	case len(ip.Centers) != len(ip.Samples):
		return fmt.Errorf("input has %d centers and %d samples", len(ip.Centers), len(ip.Samples))
	case utils.IsNan(ip.Centers) || utils.IsNan(ip.Samples) || utils.IsInf(ip.Centers) || utils.IsInf(ip.Samples):
		return fmt.Errorf("input centers and samples must be finite")
	case ip.Regularization != nil && *ip.Regularization < 0:
		return fmt.Errorf("regularization must be non-negative, have %g", *ip.Regularization)
	case ip.Rcond < 0 || math.IsNaN(ip.Rcond):
		return fmt.Errorf("rcond must be non-negative, have %g", ip.Rcond)
	}
	if _, err = RBF1D.NewTransform(ip.Transform); err != nil {
		return
	}
	if _, err = utils.ParseSolverType(ip.Solver); err != nil {
		return
	}
	ev := ip.Evaluate
	switch {
	case ev.Points < 0:
		return fmt.Errorf("evaluation point count must be non-negative, have %d", ev.Points)
	case ev.Points == 1 && ev.XMin != ev.XMax:
		return fmt.Errorf("evaluation over [%g, %g] needs at least 2 points", ev.XMin, ev.XMax)
	case ev.XMax < ev.XMin:
		return fmt.Errorf("evaluation range is reversed: XMin = %g > XMax = %g", ev.XMin, ev.XMax)
	}
	return
}

// Options translates the input into spline options, it assumes Validate passed
func (ip *SplineInput) Options() (opts []RBF1D.Option, err error) {
	var (
		tr RBF1D.Transform
		st utils.SolverType
	)
	if tr, err = RBF1D.NewTransform(ip.Transform); err != nil {
		return
	}
	if st, err = utils.ParseSolverType(ip.Solver); err != nil {
		return
	}
	opts = append(opts, RBF1D.WithTransform(tr), RBF1D.WithSolver(st), RBF1D.WithRcond(ip.Rcond))
	if ip.Regularization != nil {
		opts = append(opts, RBF1D.WithRegularization(*ip.Regularization))
	}
	return
}

// EvalPoints returns the evaluation grid, spanning the centers with
// DefaultEvalPoints points when the input does not set one.
func (ip *SplineInput) EvalPoints() (x []float64) {
	ev := ip.Evaluate
	if ev.Points > 0 {
		return utils.Linspace(ev.XMin, ev.XMax, ev.Points)
	}
	if len(ip.Centers) == 0 {
		return
	}
	C := utils.NewVectorCopy(ip.Centers)
	return utils.Linspace(C.Min(), C.Max(), DefaultEvalPoints)
}

// ClosePairs returns the index pairs of centers closer than tol, sorted by
// their position
func (ip *SplineInput) ClosePairs(tol float64) (pairs [][2]int) {
	idx := make([]int, len(ip.Centers))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return ip.Centers[idx[a]] < ip.Centers[idx[b]] })
	for k := 0; k < len(idx)-1; k++ {
		i, j := idx[k], idx[k+1]
		if math.Abs(ip.Centers[j]-ip.Centers[i]) < tol {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return
}
