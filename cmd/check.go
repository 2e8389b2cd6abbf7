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
	"math"
	"os"

	"github.com/notargets/rbfspline/InputParameters"
	"github.com/notargets/rbfspline/RBF1D"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// Data used by check when no input file is given
var (
	checkCenters = []float64{0.0, 0.5, 1.0}
	checkSamples = []float64{1.0, 1.5, -1.0}
)

const DefaultCheckTolerance = 1.e-5

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that a fitted spline reproduces its samples",
	Long: `
Fits a spline and checks f(x_i) against every sample within a tolerance. The
exit status is non zero on failure. Without an input file a built in three
point data set is used,

rbfspline check --tolerance 1e-8`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err    error
			ip     *InputParameters.SplineInput
			passed bool
		)
		inputFile, _ := cmd.Flags().GetString("inputConditionsFile")
		if len(inputFile) != 0 {
			ip = processInput(inputFile)
		} else {
			ip = &InputParameters.SplineInput{
				Title:   "Built in check",
				Centers: checkCenters,
				Samples: checkSamples,
			}
		}
		if passed, err = RunCheck(ip, viper.GetFloat64("check.tolerance"), cmd.OutOrStdout()); err != nil {
			klog.ErrorS(err, "check failed to fit", "title", ip.Title)
			os.Exit(1)
		}
		if !passed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(CheckCmd)
	CheckCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with the centers and samples to check")
	CheckCmd.Flags().Float64P("tolerance", "t", DefaultCheckTolerance, "maximum allowed |f(x_i) - F_i|")
	bindFlags(CheckCmd, "tolerance")
}

// RunCheck reports the first sample the spline misses by more than tol
func RunCheck(ip *InputParameters.SplineInput, tol float64, w io.Writer) (passed bool, err error) {
	var (
		opts []RBF1D.Option
		s    *RBF1D.Spline
	)
	if opts, err = ip.Options(); err != nil {
		return
	}
	if s, err = RBF1D.NewSpline(ip.Centers, ip.Samples, opts...); err != nil {
		return
	}
	for i, x := range ip.Centers {
		y := s.At(x)
		if math.Abs(y-ip.Samples[i]) > tol || math.IsNaN(y) {
			fmt.Fprintf(w, "Error ---> f(%g) = %g differs more than tolerance %g from input data %g\n",
				x, y, tol, ip.Samples[i])
			return
		}
	}
	fmt.Fprintln(w, "All tests passed")
	passed = true
	return
}
