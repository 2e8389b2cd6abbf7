package RBF1D

import (
	"github.com/notargets/rbfspline/utils"
)

// TrendTerms is the number of columns of the polynomial block P (constant and
// linear) and therefore the number of zero moment rows padded onto the right
// hand side. It is tied to the cubic kernel; a different kernel degree or
// trend order changes the null space dimension and this value with it.
const TrendTerms = 2

// BuildKernelMatrix returns A[i][j] = Phi(C[i]-C[j]) + epsilon*δij. The
// diagonal term is assembled sparsely and added to the dense kernel.
func BuildKernelMatrix(C utils.Vector, epsilon float64) (A utils.Matrix) {
	var (
		m  = C.Len()
		cD = C.DataP
	)
	A = utils.NewMatrix(m, m)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			A.DataP[i*m+j] = Phi(cD[i] - cD[j])
		}
	}
	if epsilon != 0 {
		A.Add(utils.NewDiagonal(m, epsilon))
	}
	return
}

// BuildTrendMatrix returns the m x 2 matrix with rows [1, C[i]].
func BuildTrendMatrix(C utils.Vector) (P utils.Matrix) {
	var (
		m = C.Len()
	)
	P = utils.NewMatrix(m, TrendTerms)
	for i, c := range C.DataP {
		P.DataP[i*TrendTerms+0] = 1
		P.DataP[i*TrendTerms+1] = c
	}
	return
}

/*
AssembleSystem builds the augmented system

	T = | A   P |   rhs = | F |
	    | Pᵀ  0 |         | 0 |

The lower right TrendTerms x TrendTerms block is exactly zero.
*/
func AssembleSystem(A, P utils.Matrix, F []float64) (T utils.Matrix, rhs utils.Vector) {
	var (
		m, _ = A.Dims()
		N    = m + TrendTerms
	)
	if pr, pc := P.Dims(); pr != m || pc != TrendTerms || len(F) != m {
		panic("AssembleSystem: inconsistent block dimensions")
	}
	T = utils.NewMatrix(N, N)
	T.SetBlock(0, 0, A)
	T.SetBlock(0, m, P)
	T.SetBlock(m, 0, P.Transpose())
	rhs = utils.NewVector(N)
	copy(rhs.DataP, F)
	return
}
