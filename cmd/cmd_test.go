package cmd

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/notargets/rbfspline/InputParameters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFit(t *testing.T) {
	fileInput := []byte(`
Title: Test Case
Centers: [0.0, 0.5, 1.0]
Samples: [1.0, 1.5, -1.0]
Transform: identity
Solver: qr
Evaluate:
  XMin: 0
  XMax: 1
  Points: 5
`)
	ip, err := readInput(fileInput)
	require.NoError(t, err)
	{
		var buf bytes.Buffer
		s, x, err := RunFit(&ModelFit{}, ip, &buf)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, x)
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 6)
		assert.Contains(t, lines[0], "f''(x)")
		fields := strings.Fields(lines[3])
		require.Len(t, fields, 4)
		assert.Equal(t, "5.000000e-01", fields[0])
		assert.Equal(t, "1.500000e+00", fields[1])
		assert.InDelta(t, 1.5, s.At(0.5), 1.e-8)
	}
	{ // Points flag overrides the input range count
		var buf bytes.Buffer
		_, x, err := RunFit(&ModelFit{Points: 3}, ip, &buf)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0.5, 1}, x)
	}
	{ // Nearly coincident centers still fit
		ipc := &InputParameters.SplineInput{
			Centers: []float64{0, 1.e-14, 1, 2},
			Samples: []float64{1, 1, 0, 1},
		}
		var buf bytes.Buffer
		_, _, err := RunFit(&ModelFit{}, ipc, &buf)
		assert.NoError(t, err)
	}
	{ // Invalid inputs are rejected before fitting
		_, err := readInput([]byte("Centers: [0, 1]\nSamples: [1]\n"))
		assert.Error(t, err)
		_, err = readInput([]byte("Centers: [0, 1\n"))
		assert.Error(t, err)
	}
}

func TestRunCheck(t *testing.T) {
	ip := &InputParameters.SplineInput{Centers: checkCenters, Samples: checkSamples}
	{
		var buf bytes.Buffer
		passed, err := RunCheck(ip, DefaultCheckTolerance, &buf)
		require.NoError(t, err)
		assert.True(t, passed)
		assert.Equal(t, "All tests passed\n", buf.String())
	}
	{ // A negative tolerance cannot be met
		var buf bytes.Buffer
		passed, err := RunCheck(ip, -1, &buf)
		require.NoError(t, err)
		assert.False(t, passed)
		assert.True(t, strings.HasPrefix(buf.String(), "Error ---> f(0)"))
	}
	{
		ipBad := &InputParameters.SplineInput{Centers: checkCenters, Samples: checkSamples[:2]}
		_, err := RunCheck(ipBad, DefaultCheckTolerance, &bytes.Buffer{})
		assert.Error(t, err)
	}
}

func TestRunConvergence(t *testing.T) {
	var (
		csvFile = filepath.Join(t.TempDir(), "conv.csv")
		mc      = &ModelConvergence{
			Function:       "exp",
			NMin:           4,
			NMax:           32,
			Solver:         "svd",
			ParallelDegree: 2,
			CSVFile:        csvFile,
		}
	)
	var buf bytes.Buffer
	require.NoError(t, RunConvergence(mc, &buf))
	assert.Contains(t, buf.String(), "solver svd")
	// A second run appends without repeating the header
	mc.Function = "runge"
	require.NoError(t, RunConvergence(mc, &buf))
	f, err := os.Open(csvFile)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+4+4)
	assert.Equal(t, "Title", records[0][0])
	assert.Equal(t, "exp", records[1][0])
	assert.Equal(t, "runge", records[8][0])
	assert.Equal(t, "32", records[8][1])

	assert.Error(t, RunConvergence(&ModelConvergence{Function: "cosh", NMin: 4, NMax: 8}, &buf))
	assert.Error(t, RunConvergence(&ModelConvergence{Function: "sin", Solver: "qz", NMin: 4, NMax: 8}, &buf))
	assert.Error(t, RunConvergence(&ModelConvergence{Function: "sin", NMin: 16, NMax: 8}, &buf))
	assert.Error(t, RunConvergence(&ModelConvergence{Function: "sin", Nodes: "random", NMin: 4, NMax: 8}, &buf))
	buf.Reset()
	require.NoError(t, RunConvergence(&ModelConvergence{Function: "sin", Nodes: "gll", NMin: 4, NMax: 8}, &buf))
	assert.Contains(t, buf.String(), "gll nodes")
}

func TestRootCommand(t *testing.T) {
	for _, name := range []string{"config", "profile", "v", "logtostderr"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"fit", "check", "convergence"})
	assert.Error(t, startProfile("gpu"))
	assert.NoError(t, startProfile(""))
	stopProfile()
}
