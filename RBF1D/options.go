package RBF1D

import (
	"fmt"

	"github.com/notargets/rbfspline/utils"
)

// DefaultRegularization is added to the diagonal of the kernel matrix.
const DefaultRegularization = 1.e-09

type Options struct {
	Transform      Transform
	Regularization float64
	Solver         utils.SolverType
	Rcond          float64 // Rank cutoff, <= 0 selects utils.DefaultRcond
}

type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Transform:      Identity{},
		Regularization: DefaultRegularization,
		Solver:         utils.PivotedQR,
	}
}

func WithTransform(tr Transform) Option {
	return func(o *Options) { o.Transform = tr }
}

// WithRegularization sets the kernel diagonal shift; zero disables it.
func WithRegularization(epsilon float64) Option {
	return func(o *Options) { o.Regularization = epsilon }
}

func WithSolver(st utils.SolverType) Option {
	return func(o *Options) { o.Solver = st }
}

func WithRcond(rcond float64) Option {
	return func(o *Options) { o.Rcond = rcond }
}

func (o Options) Validate() (err error) {
	switch {
	case o.Transform == nil:
		err = fmt.Errorf("transform must not be nil")
	case o.Regularization < 0:
		err = fmt.Errorf("regularization must be non-negative, have %g", o.Regularization)
	case o.Solver > utils.LU:
		err = fmt.Errorf("unknown solver %v", o.Solver)
	}
	return
}
