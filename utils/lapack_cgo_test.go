//go:build cgo && netlib
// +build cgo,netlib

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

func TestNetlibBackend(t *testing.T) {
	assert.IsType(t, netblas.Implementation{}, blas64.Implementation())
	// Dense products and the rank revealing solve run through netlib
	A := NewMatrix(3, 3, []float64{
		4, 1, 0,
		1, 3, 1,
		0, 1, 2,
	})
	xe := NewVector(3, []float64{1, -2, 0.5})
	b := A.MulVec(xe)
	for _, st := range []SolverType{PivotedQR, SVD, LU} {
		x, rank, err := Solve(st, A, b, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, rank)
		assert.InDeltaSlice(t, xe.DataP, x.DataP, 1.e-12)
	}
}
