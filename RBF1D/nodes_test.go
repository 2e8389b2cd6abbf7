package RBF1D

import (
	"math"
	"testing"

	"github.com/notargets/rbfspline/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodes(t *testing.T) {
	{ // Legendre Gauss and Gauss Lobatto points
		assert.InDeltaSlice(t, []float64{-1 / math.Sqrt(3), 1 / math.Sqrt(3)}, JacobiGQ(0, 0, 1), 1.e-14)
		assert.InDeltaSlice(t, []float64{0}, JacobiGQ(1, 1, 0), 1.e-14)
		assert.Equal(t, []float64{-1, 1}, JacobiGL(0, 0, 1))
		assert.InDeltaSlice(t, []float64{-1, 0, 1}, JacobiGL(0, 0, 2), 1.e-14)
		r := math.Sqrt(3. / 7.)
		assert.InDeltaSlice(t, []float64{-1, -r, 0, r, 1}, JacobiGL(0, 0, 4), 1.e-14)
	}
	{ // Distributions on an interval
		assert.Equal(t, utils.Linspace(2, 3, 6), Uniform.Nodes(2, 3, 6))
		x := GaussLobatto.Nodes(0, 2, 9)
		require.Len(t, x, 9)
		assert.Equal(t, 0., x[0])
		assert.Equal(t, 2., x[8])
		assert.InDelta(t, 1., x[4], 1.e-14)
		for i := 1; i < len(x); i++ {
			assert.Greater(t, x[i], x[i-1])
		}
		// Clustered towards the ends
		assert.Less(t, x[1]-x[0], x[5]-x[4])
		assert.Panics(t, func() { Uniform.Nodes(0, 1, 1) })
	}
	{ // Names
		for _, nd := range []NodeDistribution{Uniform, GaussLobatto} {
			parsed, err := ParseNodeDistribution(nd.String())
			require.NoError(t, err)
			assert.Equal(t, nd, parsed)
		}
		_, err := ParseNodeDistribution("chebyshev")
		assert.Error(t, err)
	}
}
