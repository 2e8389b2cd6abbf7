package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, A.RawMatrix().Data, []float64{1, 4, 2, 5, 3, 6})
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, M.DataP)
	}
	// Slice
	{
		M := NewMatrix(3, 4, []float64{
			1, 2, 3, 4,
			5, 6, 7, 8,
			9, 10, 11, 12,
		})
		A := M.Slice(1, 3, 1, 3)
		assert.Equal(t, NewMatrix(2, 2, []float64{
			6, 7,
			10, 11,
		}).DataP, A.DataP)
		// Slice is a copy
		A.Set(0, 0, -1)
		assert.Equal(t, 6., M.At(1, 1))
		assert.Panics(t, func() { M.Slice(0, 4, 0, 1) })
		assert.Panics(t, func() { M.Slice(2, 1, 0, 1) })
	}
	// SetBlock
	{
		M := NewMatrix(3, 3)
		M.SetBlock(1, 0, NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		}))
		M.SetBlock(0, 2, NewVector(3, []float64{7, 8, 9}))
		assert.Equal(t, []float64{
			0, 0, 7,
			1, 2, 8,
			3, 4, 9,
		}, M.DataP)
		M.SetBlock(0, 0, NewMatrix(1, 2, []float64{5, 6}).T())
		assert.Equal(t, 5., M.At(0, 0))
		assert.Equal(t, 6., M.At(1, 0))
		assert.Panics(t, func() { M.SetBlock(2, 2, NewIdentity(2)) })
		M.SetReadOnly("M")
		assert.Panics(t, func() { M.SetBlock(0, 0, NewIdentity(1)) })
		assert.Panics(t, func() { M.Set(0, 0, 1) })
		M.SetWritable()
		assert.NotPanics(t, func() { M.Set(-1, -1, 1) })
		assert.Equal(t, 1., M.At(2, 2))
	}
	// Arithmetic
	{
		A := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		v := NewVector(2, []float64{1, -1})
		assert.Equal(t, []float64{-1, -1}, A.MulVec(v).DataP)
		assert.Equal(t, []float64{7, 10, 15, 22}, A.Mul(A).DataP)
		I := NewIdentity(2)
		assert.Equal(t, A.DataP, A.Mul(I).DataP)
		B := A.Copy().Add(NewDiagonal(2, 10)).Scale(2)
		assert.Equal(t, []float64{22, 4, 6, 28}, B.DataP)
		assert.Equal(t, []float64{1, 2, 3, 4}, A.DataP)
		assert.Equal(t, []float64{2, 4}, A.Col(1).DataP)
		assert.Equal(t, []float64{3, 4}, A.Row(-1).DataP)
		assert.Equal(t, 1., A.Min())
		assert.Equal(t, 4., A.Max())
		assert.Equal(t, []float64{1, 4, 9, 16}, A.Copy().Apply(func(x float64) float64 { return x * x }).DataP)
	}
	// Symmetry and conditioning
	{
		S := NewMatrix(2, 2, []float64{
			2, 1,
			1, 2,
		})
		assert.True(t, S.IsSymmetric(0))
		assert.False(t, NewMatrix(2, 2, []float64{0, -1, 1, 0}).IsSymmetric(1.e-12))
		assert.False(t, NewMatrix(2, 3).IsSymmetric(1))
		assert.InDelta(t, 3., S.ConditionNumber(), 1.e-12)
		assert.Equal(t, 1.e16, NewMatrix(2, 2, []float64{1, 1, 1, 1}).ConditionNumber())
	}
	assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
}
