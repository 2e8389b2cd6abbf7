package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDOK(t *testing.T) {
	{
		D := NewDiagonal(4, 0.5)
		assert.Equal(t, 4, D.NNZ())
		assert.Equal(t, 0.5, D.At(3, 3))
		assert.Equal(t, 0., D.At(0, 3))
		Dd := D.ToDense()
		assert.Equal(t, NewIdentity(4).Scale(0.5).DataP, Dd.DataP)
		assert.Equal(t, 0, NewDiagonal(3, 0).NNZ())
	}
	{
		S := NewDOK(2, 3)
		S.Set(0, 2, 1).Set(-1, 0, 2)
		assert.Equal(t, 2, S.NNZ())
		assert.Equal(t, 2., S.At(1, 0))
		assert.Equal(t, 1., S.T().At(2, 0))
		nr, nc := S.T().Dims()
		assert.Equal(t, [2]int{3, 2}, [2]int{nr, nc})
		S.SetReadOnly("S")
		assert.Panics(t, func() { S.Set(0, 0, 1) })
	}
}
