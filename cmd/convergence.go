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
	"strings"

	"github.com/notargets/rbfspline/RBF1D"
	"github.com/notargets/rbfspline/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

type ModelConvergence struct {
	Function       string
	Nodes          string
	NMin, NMax     int
	CSVFile        string
	Solver         string
	ParallelDegree int
}

// ConvergenceCmd represents the convergence command
var ConvergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Measure interpolation error against center count for an analytic function",
	Long: `
Fits an analytic test function on uniform centers, doubling the count from
--min to --max, and reports the errors of f, f' and f''. The CSV output is
read by tools/convOrder,

rbfspline convergence --function runge --max 128 --csv runge.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		mc := &ModelConvergence{
			Function:       viper.GetString("convergence.function"),
			Nodes:          viper.GetString("convergence.nodes"),
			NMin:           viper.GetInt("convergence.min"),
			NMax:           viper.GetInt("convergence.max"),
			Solver:         viper.GetString("convergence.solver"),
			ParallelDegree: viper.GetInt("convergence.parallel"),
		}
		mc.CSVFile, _ = cmd.Flags().GetString("csv")
		if err := RunConvergence(mc, cmd.OutOrStdout()); err != nil {
			klog.ErrorS(err, "convergence study failed", "function", mc.Function)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(ConvergenceCmd)
	ConvergenceCmd.Flags().StringP("function", "f", "sin",
		"test function: "+strings.Join(RBF1D.TestFunctionNames(), ", "))
	ConvergenceCmd.Flags().String("nodes", "uniform", "center distribution: uniform or gll (Gauss Lobatto)")
	ConvergenceCmd.Flags().Int("min", 4, "smallest number of centers")
	ConvergenceCmd.Flags().Int("max", 64, "largest number of centers")
	ConvergenceCmd.Flags().StringP("solver", "s", "qr", "linear solver: qr, svd or lu")
	ConvergenceCmd.Flags().IntP("parallel", "p", 0, "number of concurrent fits, 0 uses all CPUs")
	ConvergenceCmd.Flags().String("csv", "", "append the results to this CSV file")
	bindFlags(ConvergenceCmd, "function", "nodes", "min", "max", "solver", "parallel")
}

func RunConvergence(mc *ModelConvergence, w io.Writer) (err error) {
	var (
		tf RBF1D.TestFunction
		st utils.SolverType
		nd RBF1D.NodeDistribution
	)
	if tf, err = RBF1D.NewTestFunction(mc.Function); err != nil {
		return
	}
	if st, err = utils.ParseSolverType(mc.Solver); err != nil {
		return
	}
	if nd, err = RBF1D.ParseNodeDistribution(mc.Nodes); err != nil {
		return
	}
	if mc.NMin > mc.NMax {
		return fmt.Errorf("--min %d is larger than --max %d", mc.NMin, mc.NMax)
	}
	cs := RBF1D.NewConvergenceStudy(tf, mc.NMin, mc.NMax)
	cs.Nodes = nd
	klog.V(1).InfoS("starting convergence study", "function", tf.Name, "counts", cs.Counts)
	if err = cs.Run(mc.ParallelDegree, RBF1D.WithSolver(st)); err != nil {
		return
	}
	klog.V(2).InfoS("convergence study done", "memory", utils.GetMemUsage())
	cs.Print(w)
	if len(mc.CSVFile) != 0 {
		err = appendCSV(cs, mc.CSVFile)
	}
	return
}

// appendCSV writes the header only when the file is new or empty
func appendCSV(cs *RBF1D.ConvergenceStudy, fileName string) (err error) {
	var (
		f  *os.File
		fi os.FileInfo
	)
	if f, err = os.OpenFile(fileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err != nil {
		return
	}
	defer f.Close()
	if fi, err = f.Stat(); err != nil {
		return
	}
	if err = cs.WriteCSV(f, fi.Size() == 0); err != nil {
		return fmt.Errorf("unable to write %s: %w", fileName, err)
	}
	klog.InfoS("wrote convergence results", "file", fileName, "records", len(cs.Results))
	return
}
