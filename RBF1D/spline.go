package RBF1D

import (
	"fmt"

	"github.com/notargets/rbfspline/utils"
)

/*
Spline is a cubic RBF interpolant with an affine trend:

	s(x) = Σ alpha[i] Phi(H(x) - c[i]) + beta[0] + beta[1] H(x)

where H is the coordinate transform and c the transformed centers. A Spline
is safe for concurrent evaluation once initialized, but Init must not run
concurrently with anything else on the same Spline.
*/
type Spline struct {
	opts        Options
	initialized bool
	c           utils.Vector // Transformed centers
	alpha       utils.Vector // Kernel weights, one per center
	beta        [TrendTerms]float64
	rank        int
}

// New returns an uninitialized spline; call Init to fit it.
func New(opts ...Option) (s *Spline) {
	s = &Spline{opts: defaultOptions()}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return
}

func NewSpline(C, F []float64, opts ...Option) (s *Spline, err error) {
	s = New(opts...)
	if err = s.Init(C, F); err != nil {
		return nil, err
	}
	return
}

// Init fits the spline through (C[i], F[i]) and replaces any previous fit. On
// error the spline is left exactly as it was.
func (s *Spline) Init(C, F []float64) (err error) {
	var (
		m = len(C)
	)
	switch {
	case m != len(F):
		return fmt.Errorf("%w: %d centers, %d samples", ErrShapeMismatch, m, len(F))
	case m == 0:
		return ErrEmptyInput
	case utils.IsNan(C) || utils.IsNan(F):
		return ErrNaNInput
	}
	if err = s.opts.Validate(); err != nil {
		return
	}
	Ct := utils.NewVector(m)
	for i, c := range C {
		Ct.DataP[i] = s.opts.Transform.Apply(c)
	}
	if utils.IsNan(Ct) || utils.IsInf(Ct) {
		return fmt.Errorf("%w: transform is not finite at one of the centers", ErrNaNInput)
	}
	A := BuildKernelMatrix(Ct, s.opts.Regularization)
	P := BuildTrendMatrix(Ct)
	T, rhs := AssembleSystem(A, P, F)
	y, rank, err := utils.Solve(s.opts.Solver, T, rhs, s.opts.Rcond)
	if err != nil {
		return fmt.Errorf("unable to solve %dx%d augmented system: %w", m+TrendTerms, m+TrendTerms, err)
	}
	s.c = Ct
	s.alpha = y.Subset(0, m)
	s.beta = [TrendTerms]float64{y.DataP[m], y.DataP[m+1]}
	s.rank = rank
	s.initialized = true
	return
}

func (s *Spline) Initialized() bool { return s.initialized }

func (s *Spline) Options() Options { return s.opts }

// Len is the number of centers of the current fit.
func (s *Spline) Len() int {
	if !s.initialized {
		return 0
	}
	return s.c.Len()
}

// Rank is the numerical rank of the augmented system found by the last solve.
func (s *Spline) Rank() int { return s.rank }

func (s *Spline) Centers() []float64 {
	if !s.initialized {
		return nil
	}
	return s.c.Copy().DataP
}

func (s *Spline) Weights() []float64 {
	if !s.initialized {
		return nil
	}
	return s.alpha.Copy().DataP
}

func (s *Spline) Trend() [TrendTerms]float64 { return s.beta }

func (s *Spline) Eval(x float64) (y float64, err error) {
	if !s.initialized {
		return 0, ErrNotInitialized
	}
	var (
		h     = s.opts.Transform.Apply(x)
		alpha = s.alpha.DataP
	)
	for i, c := range s.c.DataP {
		y += alpha[i] * Phi(h-c)
	}
	y += s.beta[0] + s.beta[1]*h
	return
}

func (s *Spline) EvalD(x float64) (dy float64, err error) {
	if !s.initialized {
		return 0, ErrNotInitialized
	}
	var (
		h     = s.opts.Transform.Apply(x)
		dh    = s.opts.Transform.Derivative(x)
		alpha = s.alpha.DataP
	)
	for i, c := range s.c.DataP {
		dy += alpha[i] * DPhi(h-c) * dh
	}
	dy += s.beta[1] * dh
	return
}

// EvalD2 applies the chain rule through H twice:
// s'' = Σ alpha[i] (Phi''(H-c[i]) H'² + Phi'(H-c[i]) H'') + beta[1] H''
func (s *Spline) EvalD2(x float64) (d2y float64, err error) {
	if !s.initialized {
		return 0, ErrNotInitialized
	}
	var (
		h     = s.opts.Transform.Apply(x)
		dh    = s.opts.Transform.Derivative(x)
		d2h   = s.opts.Transform.SecondDerivative(x)
		dh2   = utils.POW(dh, 2)
		alpha = s.alpha.DataP
	)
	for i, c := range s.c.DataP {
		d2y += alpha[i]*D2Phi(h-c)*dh2 + alpha[i]*DPhi(h-c)*d2h
	}
	d2y += s.beta[1] * d2h
	return
}

// At, D and D2 drop the error and return 0 on an uninitialized spline.
func (s *Spline) At(x float64) float64 { y, _ := s.Eval(x); return y }
func (s *Spline) D(x float64) float64  { y, _ := s.EvalD(x); return y }
func (s *Spline) D2(x float64) float64 { y, _ := s.EvalD2(x); return y }

// EvalAll evaluates a sequence of values. An optional output slice of the
// same length may be supplied to avoid allocation.
func (s *Spline) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	return s.evalAll(s.Eval, xs, out)
}

func (s *Spline) EvalDAll(xs []float64, out ...[]float64) ([]float64, error) {
	return s.evalAll(s.EvalD, xs, out)
}

func (s *Spline) EvalD2All(xs []float64, out ...[]float64) ([]float64, error) {
	return s.evalAll(s.EvalD2, xs, out)
}

func (s *Spline) evalAll(f func(float64) (float64, error), xs []float64, out [][]float64) (ys []float64, err error) {
	if !s.initialized {
		return nil, ErrNotInitialized
	}
	if len(out) == 0 {
		ys = make([]float64, len(xs))
	} else {
		if len(out[0]) != len(xs) {
			panic(fmt.Sprintf("output length %d does not match input length %d", len(out[0]), len(xs)))
		}
		ys = out[0]
	}
	for i, x := range xs {
		ys[i], _ = f(x)
	}
	return
}
