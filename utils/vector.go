package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

func NewVector(N int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != N {
			panic(fmt.Errorf("mismatch in allocation: NewVector N = %v, len(data[0]) = %v", N, len(dataO[0])))
		}
		v = mat.NewVecDense(N, dataO[0])
	} else {
		v = mat.NewVecDense(N, make([]float64, N))
	}
	R = Vector{
		V:     v,
		DataP: v.RawVector().Data,
	}
	return
}

// NewVectorCopy allocates a vector holding a copy of data.
func NewVectorCopy(data []float64) (R Vector) {
	d := make([]float64, len(data))
	copy(d, data)
	return NewVector(len(d), d)
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) Data() []float64          { return v.DataP }

// Chainable (extended) methods
func (v Vector) Set(val float64) Vector {
	for i := range v.DataP {
		v.DataP[i] = val
	}
	return v
}

func (v Vector) Copy() Vector { return NewVectorCopy(v.DataP) }

// Subset returns a copy of elements [i1, i2)
func (v Vector) Subset(i1, i2 int) Vector {
	if i1 < 0 || i2 > len(v.DataP) || i2 < i1 {
		panic(fmt.Errorf("subset [%d:%d] out of bounds for vector of length %d", i1, i2, len(v.DataP)))
	}
	return NewVectorCopy(v.DataP[i1:i2])
}

func (v Vector) Apply(f func(float64) float64) Vector {
	for i, val := range v.DataP {
		v.DataP[i] = f(val)
	}
	return v
}

func (v Vector) POW(p int) Vector {
	for i, val := range v.DataP {
		v.DataP[i] = POW(val, p)
	}
	return v
}

func (v Vector) ToMatrix() Matrix {
	return NewMatrix(v.Len(), 1, v.DataP)
}

func (v Vector) Min() (min float64) {
	min = v.DataP[0]
	for _, val := range v.DataP {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	max = v.DataP[0]
	for _, val := range v.DataP {
		if val > max {
			max = val
		}
	}
	return
}

// Linspace returns N points evenly spaced on [xmin, xmax], endpoints included.
func Linspace(xmin, xmax float64, N int) (x []float64) {
	x = make([]float64, N)
	if N == 1 {
		x[0] = xmin
		return
	}
	dx := (xmax - xmin) / float64(N-1)
	for i := range x {
		x[i] = xmin + float64(i)*dx
	}
	x[N-1] = xmax
	return
}
