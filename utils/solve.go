package utils

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

type SolverType uint8

const (
	PivotedQR SolverType = iota
	SVD
	LU
)

func (st SolverType) String() string {
	switch st {
	case PivotedQR:
		return "qr"
	case SVD:
		return "svd"
	case LU:
		return "lu"
	}
	return fmt.Sprintf("SolverType(%d)", uint8(st))
}

func ParseSolverType(label string) (st SolverType, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "qr", "pivotedqr":
		st = PivotedQR
	case "svd":
		st = SVD
	case "lu":
		st = LU
	default:
		err = fmt.Errorf("unknown solver type %q, must be one of qr, svd, lu", label)
	}
	return
}

// DefaultRcond returns the rank cutoff used when none is given for an N x N
// system: machine epsilon scaled by the diagonal size.
func DefaultRcond(N int) float64 {
	return float64(N) * 0x1p-52
}

// Solve solves A*x = b with the chosen decomposition. rank is the numerical
// rank found by the rank revealing solvers, N for LU. A non-positive rcond
// selects DefaultRcond.
func Solve(st SolverType, A Matrix, b Vector, rcond float64) (x Vector, rank int, err error) {
	switch st {
	case PivotedQR:
		return SolvePivotedQR(A, b, rcond)
	case SVD:
		return SolveSVD(A, b, rcond)
	case LU:
		return SolveLU(A, b)
	}
	err = fmt.Errorf("unknown solver type %v", st)
	return
}

/*
SolvePivotedQR computes a rank revealing factorization A*P = Q*R with
Householder reflections and column pivoting, then solves

	R11 * z1 = (Qᵀ b)[0:rank],  z2 = 0,  x = P z

where rank counts the pivots |R[k][k]| > rcond*|R[0][0]|. A rank deficient or
indefinite A still produces a solution; accuracy degrades with conditioning.
*/
func SolvePivotedQR(A Matrix, b Vector, rcond float64) (x Vector, rank int, err error) {
	var (
		nr, nc = A.Dims()
	)
	if err = checkSystem(nr, nc, b); err != nil {
		return
	}
	if rcond <= 0 {
		rcond = DefaultRcond(nr)
	}
	var (
		N    = nr
		QR   = A.Copy()
		a    = QR.RawMatrix()
		jpvt = make([]int, N)
		tau  = make([]float64, N)
		work = []float64{0}
		c    = b.Copy()
		cG   = blas64.General{Rows: N, Cols: 1, Stride: 1, Data: c.DataP}
	)
	for j := range jpvt {
		jpvt[j] = -1 // All columns are free
	}
	lapack64.Geqp3(a, jpvt, tau, work, -1)
	work = make([]float64, int(work[0]))
	lapack64.Geqp3(a, jpvt, tau, work, len(work))

	// c = Qᵀ b
	work = []float64{0}
	lapack64.Ormqr(blas.Left, blas.Trans, a, tau, cG, work, -1)
	work = make([]float64, int(work[0]))
	lapack64.Ormqr(blas.Left, blas.Trans, a, tau, cG, work, len(work))

	maxPivot := math.Abs(a.Data[0])
	for rank < N && math.Abs(a.Data[rank*a.Stride+rank]) > rcond*maxPivot {
		rank++
	}
	z := make([]float64, N)
	if rank > 0 {
		R11 := blas64.Triangular{
			Uplo:   blas.Upper,
			Diag:   blas.NonUnit,
			N:      rank,
			Stride: a.Stride,
			Data:   a.Data,
		}
		zG := blas64.General{Rows: rank, Cols: 1, Stride: 1, Data: c.DataP[:rank]}
		if ok := lapack64.Trtrs(blas.NoTrans, R11, zG); !ok {
			err = fmt.Errorf("triangular solve failed on a block of rank %d", rank)
			return
		}
		copy(z, c.DataP[:rank])
	}
	// Undo the column permutation: the jth column of A*P was column jpvt[j] of A
	x = NewVector(N)
	for j, pj := range jpvt {
		x.DataP[pj] = z[j]
	}
	return
}

// SolveSVD returns the minimum norm least squares solution, truncated to the
// singular values above rcond times the largest.
func SolveSVD(A Matrix, b Vector, rcond float64) (x Vector, rank int, err error) {
	var (
		nr, nc = A.Dims()
		svd    mat.SVD
	)
	if err = checkSystem(nr, nc, b); err != nil {
		return
	}
	if rcond <= 0 {
		rcond = DefaultRcond(nr)
	}
	if ok := svd.Factorize(A.M, mat.SVDThin); !ok {
		err = fmt.Errorf("SVD factorization failed to converge")
		return
	}
	x = NewVector(nc)
	if rank = svd.Rank(rcond); rank == 0 {
		return
	}
	svd.SolveVecTo(x.V, b.V, rank)
	return
}

// SolveLU uses partial pivoting only and fails on an exactly singular matrix.
func SolveLU(A Matrix, b Vector) (x Vector, rank int, err error) {
	var (
		nr, nc = A.Dims()
		lu     mat.LU
	)
	if err = checkSystem(nr, nc, b); err != nil {
		return
	}
	lu.Factorize(A.M)
	x = NewVector(nc)
	if err = lu.SolveVecTo(x.V, false, b.V); err != nil {
		if _, ok := err.(mat.Condition); !ok || math.IsInf(float64(err.(mat.Condition)), 1) {
			err = fmt.Errorf("LU solve failed, matrix is singular: %w", err)
			return
		}
		// Ill conditioned but solved
		err = nil
	}
	rank = nr
	return
}

func checkSystem(nr, nc int, b Vector) (err error) {
	if nr != nc {
		err = fmt.Errorf("system matrix must be square, have %dx%d", nr, nc)
		return
	}
	if b.Len() != nr {
		err = fmt.Errorf("dimension mismatch: matrix is %dx%d, right hand side has length %d", nr, nc, b.Len())
	}
	return
}
