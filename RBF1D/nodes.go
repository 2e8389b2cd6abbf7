package RBF1D

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

type NodeDistribution uint8

const (
	Uniform NodeDistribution = iota
	GaussLobatto
)

func (nd NodeDistribution) String() string {
	switch nd {
	case Uniform:
		return "uniform"
	case GaussLobatto:
		return "gll"
	}
	return fmt.Sprintf("NodeDistribution(%d)", uint8(nd))
}

func ParseNodeDistribution(label string) (nd NodeDistribution, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "uniform":
		nd = Uniform
	case "gll", "gausslobatto":
		nd = GaussLobatto
	default:
		err = fmt.Errorf("unknown node distribution %q, must be uniform or gll", label)
	}
	return
}

// Nodes returns n centers on [xmin, xmax], endpoints included
func (nd NodeDistribution) Nodes(xmin, xmax float64, n int) (x []float64) {
	if n < 2 {
		panic(fmt.Sprintf("at least 2 nodes are needed, have %d", n))
	}
	switch nd {
	case GaussLobatto:
		x = JacobiGL(0, 0, n-1)
		for i, r := range x {
			x[i] = xmin + 0.5*(r+1)*(xmax-xmin)
		}
		x[0], x[n-1] = xmin, xmax
	default:
		x = make([]float64, n)
		dx := (xmax - xmin) / float64(n-1)
		for i := range x {
			x[i] = xmin + float64(i)*dx
		}
		x[n-1] = xmax
	}
	return
}

// JacobiGL returns the N+1 Gauss Lobatto points of the Jacobi polynomial
// P^(alpha,beta) on [-1,1] in ascending order.
func JacobiGL(alpha, beta float64, N int) (x []float64) {
	x = make([]float64, N+1)
	x[0], x[N] = -1, 1
	if N == 1 {
		return
	}
	copy(x[1:N], JacobiGQ(alpha+1, beta+1, N-2))
	return
}

// JacobiGQ returns the N+1 Gauss quadrature points of P^(alpha,beta), the
// eigenvalues of the symmetric tridiagonal Jacobi matrix.
func JacobiGQ(alpha, beta float64, N int) (x []float64) {
	if N == 0 {
		return []float64{-(alpha - beta) / (alpha + beta + 2.)}
	}
	var (
		h1  = make([]float64, N+1)
		J   = mat.NewSymDense(N+1, nil)
		fac = -.5 * (alpha*alpha - beta*beta)
		eig mat.EigenSym
	)
	for i := range h1 {
		h1[i] = 2*float64(i) + alpha + beta
	}
	// main diagonal: -1/2*(alpha^2-beta^2)/(h1+2)/h1
	for i := 0; i <= N; i++ {
		J.SetSym(i, i, fac/(h1[i]*(h1[i]+2.)))
	}
	// Division by zero
	if alpha+beta < 10*1.e-16 {
		J.SetSym(0, 0, 0)
	}
	// 1st upper diagonal
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		val := h1[i]
		J.SetSym(i, i+1, 2./(val+2.)*
			math.Sqrt(ip1*(ip1+alpha+beta)*(ip1+alpha)*(ip1+beta)/((val+1.)*(val+3.))))
	}
	if ok := eig.Factorize(J, false); !ok {
		panic("eigenvalue decomposition failed")
	}
	x = eig.Values(nil)
	return
}
