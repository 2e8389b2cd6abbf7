package InputParameters

import (
	"testing"

	"github.com/notargets/rbfspline/RBF1D"
	"github.com/notargets/rbfspline/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplineInput(t *testing.T) {
	{ // Full input
		data := []byte(`
Title: "Test Case"
Centers: [0.0, 0.5, 1.0]
Samples: [1.0, 1.5, -1.0]
Transform: identity
Regularization: 0
Solver: svd
Rcond: 1.0e-12
Evaluate:
  XMin: 0
  XMax: 1
  Points: 11
`)
		var ip SplineInput
		require.NoError(t, ip.Parse(data))
		assert.Equal(t, "Test Case", ip.Title)
		assert.Equal(t, []float64{0, 0.5, 1}, ip.Centers)
		assert.Equal(t, []float64{1, 1.5, -1}, ip.Samples)
		require.NotNil(t, ip.Regularization)
		assert.Equal(t, 0., *ip.Regularization)
		assert.Equal(t, 1.e-12, ip.Rcond)
		assert.Equal(t, EvaluateRange{XMin: 0, XMax: 1, Points: 11}, ip.Evaluate)
		require.NoError(t, ip.Validate())
		assert.Len(t, ip.EvalPoints(), 11)

		opts, err := ip.Options()
		require.NoError(t, err)
		s, err := RBF1D.NewSpline(ip.Centers, ip.Samples, opts...)
		require.NoError(t, err)
		assert.Equal(t, utils.SVD, s.Options().Solver)
		assert.Equal(t, 0., s.Options().Regularization)
		assert.Equal(t, 1.e-12, s.Options().Rcond)
		for i, c := range ip.Centers {
			assert.InDelta(t, ip.Samples[i], s.At(c), 1.e-8)
		}
		assert.NotPanics(t, ip.Print)
	}
	{ // Defaults
		var ip SplineInput
		require.NoError(t, ip.Parse([]byte("Centers: [2, 1, 4]\nSamples: [0, 1, 0]\n")))
		require.NoError(t, ip.Validate())
		assert.Nil(t, ip.Regularization)
		x := ip.EvalPoints()
		assert.Len(t, x, DefaultEvalPoints)
		assert.Equal(t, 1., x[0])
		assert.Equal(t, 4., x[len(x)-1])
		opts, err := ip.Options()
		require.NoError(t, err)
		s := RBF1D.New(opts...)
		assert.Equal(t, RBF1D.DefaultRegularization, s.Options().Regularization)
		assert.Equal(t, utils.PivotedQR, s.Options().Solver)
		assert.Equal(t, RBF1D.Identity{}, s.Options().Transform)
		assert.NotPanics(t, ip.Print)
	}
	{ // Log transform
		var ip SplineInput
		require.NoError(t, ip.Parse([]byte("Centers: [1, 10, 100]\nSamples: [0, 1, 2]\nTransform: log\n")))
		require.NoError(t, ip.Validate())
		opts, err := ip.Options()
		require.NoError(t, err)
		s, err := RBF1D.NewSpline(ip.Centers, ip.Samples, opts...)
		require.NoError(t, err)
		assert.InDelta(t, 1.5, s.At(31.622776601683793), 1.e-8)
	}
	{ // Validation failures
		bad := []string{
			"Centers: []\nSamples: []\n",
			"Centers: [0, 1]\nSamples: [1]\n",
			"Centers: [0, 1]\nSamples: [1, 2]\nRegularization: -1\n",
			"Centers: [0, 1]\nSamples: [1, 2]\nRcond: -1\n",
			"Centers: [0, 1]\nSamples: [1, 2]\nTransform: sqrt\n",
			"Centers: [0, 1]\nSamples: [1, 2]\nSolver: cholesky\n",
			"Centers: [0, 1]\nSamples: [1, 2]\nEvaluate: {XMin: 0, XMax: 1, Points: 1}\n",
			"Centers: [0, 1]\nSamples: [1, 2]\nEvaluate: {XMin: 0, XMax: 1, Points: -2}\n",
			"Centers: [0, 1]\nSamples: [1, 2]\nEvaluate: {XMin: 1, XMax: 0, Points: 5}\n",
		}
		for _, data := range bad {
			var ip SplineInput
			require.NoError(t, ip.Parse([]byte(data)), data)
			assert.Error(t, ip.Validate(), data)
		}
		var ip SplineInput
		assert.Error(t, ip.Parse([]byte("Centers: [0, 1\n")))
	}
	{ // Close centers
		ip := SplineInput{Centers: []float64{1, 0, 0.5, 1 + 1.e-14, 0}}
		assert.Equal(t, [][2]int{{1, 4}, {0, 3}}, ip.ClosePairs(utils.NODETOL))
		ip.Centers = []float64{0, 1}
		assert.Nil(t, ip.ClosePairs(utils.NODETOL))
	}
}
