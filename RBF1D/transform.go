package RBF1D

import (
	"fmt"
	"math"
	"strings"
)

// Transform reparametrizes the independent variable before the spline sees
// it. Derivative and SecondDerivative must be the exact derivatives of Apply;
// this is not checked.
type Transform interface {
	Apply(x float64) float64
	Derivative(x float64) float64
	SecondDerivative(x float64) float64
}

var (
	_ Transform = Identity{}
	_ Transform = LogTransform{}
	_ Transform = FuncTransform{}
)

type Identity struct{}

func (Identity) Apply(x float64) float64          { return x }
func (Identity) Derivative(float64) float64       { return 1 }
func (Identity) SecondDerivative(float64) float64 { return 0 }

// LogTransform fits the spline in ln(x). Inputs must be positive.
type LogTransform struct{}

func (LogTransform) Apply(x float64) float64            { return math.Log(x) }
func (LogTransform) Derivative(x float64) float64       { return 1 / x }
func (LogTransform) SecondDerivative(x float64) float64 { return -1 / (x * x) }

// FuncTransform adapts a function triple (H, H', H'') to a Transform.
type FuncTransform struct {
	H, DH, D2H func(float64) float64
}

func (ft FuncTransform) Apply(x float64) float64            { return ft.H(x) }
func (ft FuncTransform) Derivative(x float64) float64       { return ft.DH(x) }
func (ft FuncTransform) SecondDerivative(x float64) float64 { return ft.D2H(x) }

func NewTransform(label string) (tr Transform, err error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "identity":
		tr = Identity{}
	case "log":
		tr = LogTransform{}
	default:
		err = fmt.Errorf("unknown transform %q, must be one of identity, log", label)
	}
	return
}
