package utils

import (
	"math"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(p))
	return
}

// RMS and MaxAbs of the elementwise difference a - b
func ErrorNorms(a, b []float64) (rms, maxAbs float64) {
	if len(a) != len(b) {
		panic("ErrorNorms: length mismatch")
	}
	if len(a) == 0 {
		return
	}
	for i := range a {
		d := math.Abs(a[i] - b[i])
		rms += d * d
		if d > maxAbs {
			maxAbs = d
		}
	}
	rms = math.Sqrt(rms / float64(len(a)))
	return
}

// ObservedOrder returns log(e[i]/e[i+1]) / log(n[i+1]/n[i]) for each pair of
// successive resolutions; a zero error yields NaN.
func ObservedOrder(n []int, e []float64) (order []float64) {
	if len(n) != len(e) {
		panic("ObservedOrder: length mismatch")
	}
	for i := 0; i < len(n)-1; i++ {
		if e[i] == 0 || e[i+1] == 0 {
			order = append(order, math.NaN())
			continue
		}
		order = append(order,
			math.Log(e[i]/e[i+1])/math.Log(float64(n[i+1])/float64(n[i])))
	}
	return
}
