package RBF1D

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/notargets/rbfspline/utils"
)

// TestFunction is an analytic function with its first two derivatives on [XMin, XMax]
type TestFunction struct {
	Name       string
	F, DF, D2F func(x float64) float64
	XMin, XMax float64
}

var testFunctions = map[string]TestFunction{
	"sin": {
		Name: "sin",
		F:    func(x float64) float64 { return math.Sin(2 * x) },
		DF:   func(x float64) float64 { return 2 * math.Cos(2*x) },
		D2F:  func(x float64) float64 { return -4 * math.Sin(2*x) },
		XMin: 0, XMax: 1,
	},
	"runge": {
		Name: "runge",
		F:    func(x float64) float64 { return 1 / (1 + 25*x*x) },
		DF: func(x float64) float64 {
			d := 1 + 25*x*x
			return -50 * x / (d * d)
		},
		D2F: func(x float64) float64 {
			d := 1 + 25*x*x
			return (3750*x*x - 50) / (d * d * d)
		},
		XMin: -1, XMax: 1,
	},
	"exp": {
		Name: "exp",
		F:    math.Exp,
		DF:   math.Exp,
		D2F:  math.Exp,
		XMin: 0, XMax: 1,
	},
}

// TestFunctionNames lists the names accepted by NewTestFunction
func TestFunctionNames() (names []string) {
	for name := range testFunctions {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

func NewTestFunction(name string) (tf TestFunction, err error) {
	var ok bool
	if tf, ok = testFunctions[strings.ToLower(name)]; !ok {
		err = fmt.Errorf("unknown test function %q, must be one of %s",
			name, strings.Join(TestFunctionNames(), ", "))
	}
	return
}

// ConvergenceResult holds RMS and maximum errors of f, f' and f'' for one center count
type ConvergenceResult struct {
	N        int
	RMS, Max [3]float64
}

/*
ConvergenceStudy fits a TestFunction on centers placed by Nodes whose count
doubles from NMin up to NMax, and measures the errors on a fine uniform grid.
The second derivative error includes the end points, where the spline
curvature vanishes, so its maximum does not decrease unless f'' does too.
*/
type ConvergenceStudy struct {
	Function   TestFunction
	Nodes      NodeDistribution
	Counts     []int
	EvalPoints int
	Results    []ConvergenceResult
	Solver     utils.SolverType
}

func NewConvergenceStudy(tf TestFunction, nMin, nMax int) (cs *ConvergenceStudy) {
	if nMin < 2 {
		nMin = 2
	}
	cs = &ConvergenceStudy{
		Function:   tf,
		EvalPoints: 1001,
	}
	for n := nMin; n <= nMax; n *= 2 {
		cs.Counts = append(cs.Counts, n)
	}
	return
}

// Run fits all resolutions concurrently and fills Results, in order of Counts
func (cs *ConvergenceStudy) Run(parallelDegree int, opts ...Option) (err error) {
	var (
		tf      = cs.Function
		K       = len(cs.Counts)
		centers = make([][]float64, K)
		samples = make([][]float64, K)
		xe      = utils.Linspace(tf.XMin, tf.XMax, cs.EvalPoints)
		exact   [3][]float64
		approx  [3][]float64
	)
	if K == 0 {
		return fmt.Errorf("no center counts to study")
	}
	for k, n := range cs.Counts {
		centers[k] = cs.Nodes.Nodes(tf.XMin, tf.XMax, n)
		samples[k] = make([]float64, n)
		for i, x := range centers[k] {
			samples[k][i] = tf.F(x)
		}
	}
	for d, f := range []func(float64) float64{tf.F, tf.DF, tf.D2F} {
		exact[d] = make([]float64, len(xe))
		approx[d] = make([]float64, len(xe))
		for i, x := range xe {
			exact[d][i] = f(x)
		}
	}
	splines, errs := FitBatch(centers, samples, parallelDegree, opts...)
	if err = FirstError(errs); err != nil {
		return
	}
	cs.Solver = splines[0].Options().Solver
	cs.Results = make([]ConvergenceResult, K)
	for k, s := range splines {
		res := ConvergenceResult{N: cs.Counts[k]}
		evals := []func([]float64, ...[]float64) ([]float64, error){s.EvalAll, s.EvalDAll, s.EvalD2All}
		for d, eval := range evals {
			if _, err = eval(xe, approx[d]); err != nil {
				return
			}
			res.RMS[d], res.Max[d] = utils.ErrorNorms(approx[d], exact[d])
		}
		cs.Results[k] = res
	}
	return
}

// Errors returns the center counts and one error column, d selects f, f' or f''
func (cs *ConvergenceStudy) Errors(d int, useMax bool) (n []int, e []float64) {
	for _, res := range cs.Results {
		n = append(n, res.N)
		if useMax {
			e = append(e, res.Max[d])
		} else {
			e = append(e, res.RMS[d])
		}
	}
	return
}

func (cs *ConvergenceStudy) Print(w io.Writer) {
	fmt.Fprintf(w, "Convergence study for %s on [%g, %g], %s nodes, solver %s\n",
		cs.Function.Name, cs.Function.XMin, cs.Function.XMax, cs.Nodes, cs.Solver)
	fmt.Fprintf(w, "%6s %12s %12s %12s %12s %12s %12s\n",
		"N", "f RMS", "df RMS", "d2f RMS", "f MAX", "df MAX", "d2f MAX")
	for _, res := range cs.Results {
		fmt.Fprintf(w, "%6d %12.4e %12.4e %12.4e %12.4e %12.4e %12.4e\n",
			res.N, res.RMS[0], res.RMS[1], res.RMS[2], res.Max[0], res.Max[1], res.Max[2])
	}
}

// Title names the study by its function, and its node distribution unless uniform
func (cs *ConvergenceStudy) Title() string {
	if cs.Nodes == Uniform {
		return cs.Function.Name
	}
	return cs.Function.Name + "-" + cs.Nodes.String()
}

// CSVHeader is the first record written by WriteCSV
var CSVHeader = []string{"Title", "NumCenters", "Solver", "EvalPoints",
	"fRMS", "dfRMS", "d2fRMS", "fMAX", "dfMAX", "d2fMAX"}

// WriteCSV writes one record per result, preceded by CSVHeader when header is true
func (cs *ConvergenceStudy) WriteCSV(w io.Writer, header bool) (err error) {
	cw := csv.NewWriter(w)
	if header {
		if err = cw.Write(CSVHeader); err != nil {
			return
		}
	}
	ff := func(v float64) string { return strconv.FormatFloat(v, 'e', 8, 64) }
	for _, res := range cs.Results {
		rec := []string{cs.Title(), strconv.Itoa(res.N), cs.Solver.String(), strconv.Itoa(cs.EvalPoints),
			ff(res.RMS[0]), ff(res.RMS[1]), ff(res.RMS[2]),
			ff(res.Max[0]), ff(res.Max[1]), ff(res.Max[2])}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}
