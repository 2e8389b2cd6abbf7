package RBF1D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKernel(t *testing.T) {
	{ // Zero at the origin
		assert.Equal(t, 0., Phi(0))
		assert.Equal(t, 0., DPhi(0))
		assert.Equal(t, 0., D2Phi(0))
	}
	{ // Exact formulas
		for _, r := range []float64{-2.5, -1, -0.1, 0.1, 1, 3} {
			assert.InDelta(t, math.Pow(math.Abs(r), 3), math.Abs(Phi(r)), 1.e-12)
			assert.Equal(t, r*r*math.Abs(r), Phi(r))
			assert.Equal(t, 3*math.Abs(r)*r, DPhi(r))
			assert.Equal(t, 6*math.Abs(r), D2Phi(r))
		}
	}
	{ // Phi and D2Phi are even, DPhi is odd
		for _, r := range []float64{0.3, 1.7, 42} {
			assert.Equal(t, Phi(r), Phi(-r))
			assert.Equal(t, -DPhi(r), DPhi(-r))
			assert.Equal(t, D2Phi(r), D2Phi(-r))
		}
	}
	{ // Derivatives agree with central differences
		h := 1.e-5
		for _, r := range []float64{-1.3, -0.4, 0.25, 2} {
			assert.InDelta(t, DPhi(r), (Phi(r+h)-Phi(r-h))/(2*h), 1.e-6)
			assert.InDelta(t, D2Phi(r), (DPhi(r+h)-DPhi(r-h))/(2*h), 1.e-6)
		}
	}
}
