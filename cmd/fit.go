/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/notargets/rbfspline/InputParameters"
	"github.com/notargets/rbfspline/RBF1D"
	"github.com/notargets/rbfspline/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

type ModelFit struct {
	InputFile string
	Graph     bool
	Points    int
}

// FitCmd represents the fit command
var FitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit a spline through the samples of an input file and tabulate it",
	Long: `
Reads centers and samples from a YAML input file, fits the spline and prints
x, f(x), f'(x) and f''(x) over the evaluation range,

rbfspline fit -I input.yaml --graph`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		mf := &ModelFit{}
		if mf.InputFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		mf.Graph, _ = cmd.Flags().GetBool("graph")
		mf.Points = viper.GetInt("fit.points")
		ip := processInput(mf.InputFile)
		ip.Print()
		s, x, err := RunFit(mf, ip, cmd.OutOrStdout())
		if err != nil {
			klog.ErrorS(err, "fit failed", "input", mf.InputFile)
			os.Exit(1)
		}
		if mf.Graph {
			PlotFit(s, ip, x)
		}
	},
}

func init() {
	rootCmd.AddCommand(FitCmd)
	FitCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with the centers, samples and spline options")
	FitCmd.Flags().BoolP("graph", "g", false, "display a graph of the spline and its samples")
	FitCmd.Flags().IntP("points", "n", 0, "number of evaluation points, overrides the input file")
	bindFlags(FitCmd, "points")
}

const exampleInputFile = `
########################################
Title: "Test Case"
Centers: [0.0, 0.5, 1.0]
Samples: [1.0, 1.5, -1.0]
Transform: identity # Can be "log"
Solver: qr          # Can be "svd" or "lu"
Evaluate:
  XMin: 0
  XMax: 1
  Points: 11
########################################
`

func processInput(fileName string) (ip *InputParameters.SplineInput) {
	var (
		err  error
		data []byte
	)
	if len(fileName) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
		fmt.Printf("error: %s\n", err.Error())
		fmt.Printf("Example File:%s\n", exampleInputFile)
		os.Exit(1)
	}
	if data, err = os.ReadFile(fileName); err != nil {
		klog.ErrorS(err, "unable to read input file", "input", fileName)
		os.Exit(1)
	}
	if ip, err = readInput(data); err != nil {
		klog.ErrorS(err, "invalid input file", "input", fileName)
		os.Exit(1)
	}
	return
}

func readInput(data []byte) (ip *InputParameters.SplineInput, err error) {
	ip = &InputParameters.SplineInput{}
	if err = ip.Parse(data); err != nil {
		return
	}
	err = ip.Validate()
	return
}

// RunFit fits the spline described by ip and writes the evaluation table to w.
// It returns the spline and the evaluation points.
func RunFit(mf *ModelFit, ip *InputParameters.SplineInput, w io.Writer) (s *RBF1D.Spline, x []float64, err error) {
	var (
		opts []RBF1D.Option
	)
	for _, pair := range ip.ClosePairs(utils.NODETOL) {
		klog.Warningf("centers %d and %d are closer than %g, the system is nearly singular",
			pair[0], pair[1], utils.NODETOL)
	}
	if opts, err = ip.Options(); err != nil {
		return
	}
	if s, err = RBF1D.NewSpline(ip.Centers, ip.Samples, opts...); err != nil {
		return
	}
	logSystemDiagnostics(s)
	x = ip.EvalPoints()
	if mf.Points > 0 && len(x) != 0 {
		x = utils.Linspace(x[0], x[len(x)-1], mf.Points)
	}
	var f, df, d2f []float64
	if f, err = s.EvalAll(x); err != nil {
		return
	}
	if df, err = s.EvalDAll(x); err != nil {
		return
	}
	if d2f, err = s.EvalD2All(x); err != nil {
		return
	}
	fmt.Fprintf(w, "%14s %14s %14s %14s\n", "x", "f(x)", "f'(x)", "f''(x)")
	for i := range x {
		fmt.Fprintf(w, "%14.6e %14.6e %14.6e %14.6e\n", x[i], f[i], df[i], d2f[i])
	}
	return
}

func logSystemDiagnostics(s *RBF1D.Spline) {
	N := s.Len() + RBF1D.TrendTerms
	if s.Rank() < N {
		klog.V(1).InfoS("augmented system is rank deficient", "rank", s.Rank(), "size", N)
	}
	if klog.V(2).Enabled() {
		var (
			opts = s.Options()
			C    = utils.NewVector(s.Len(), s.Centers())
			A    = RBF1D.BuildKernelMatrix(C, opts.Regularization)
			P    = RBF1D.BuildTrendMatrix(C)
			F    = make([]float64, s.Len())
		)
		T, _ := RBF1D.AssembleSystem(A, P, F)
		klog.V(2).InfoS("augmented system", "size", N, "condition", T.ConditionNumber(),
			"solver", opts.Solver.String())
	}
}

func PlotFit(s *RBF1D.Spline, ip *InputParameters.SplineInput, x []float64) {
	var (
		lc    = utils.NewLineChart()
		f, _  = s.EvalAll(x)
		xr    = utils.NewVectorCopy(x)
		fr    = utils.NewVectorCopy(f)
		cross = 0.01 * (xr.Max() - xr.Min() + fr.Max() - fr.Min())
	)
	lc.AddCurve(x, f, utils.GetColor(utils.Blue))
	lc.AddCrossHairs(ip.Centers, ip.Samples, cross, utils.GetColor(utils.Red))
	lc.Show(1920, 1080)
}
