package neuralnet

import "math"

// RegularizationFunction defines the interface for a weight-decay penalty and its gradient.
type RegularizationFunction interface {
	// Penalty returns the penalty value for a weight.
	Penalty(w float64) float64
	// Derivative returns the gradient ∂penalty/∂w.
	Derivative(w float64) float64
	// Prunes reports whether a decay step that drives a weight through zero should
	// pin the weight at exactly zero and kill the link permanently.
	Prunes() bool
}

// L1 implements the |w| penalty. Decay under L1 snaps weights that cross zero.
type L1 struct{}

func (L1) Penalty(w float64) float64 {
	return math.Abs(w)
}

func (L1) Derivative(w float64) float64 {
	if w < 0 {
		return -1
	}
	if w > 0 {
		return 1
	}
	return 0
}

func (L1) Prunes() bool { return true }

// L2 implements the 0.5 * w^2 penalty.
type L2 struct{}

func (L2) Penalty(w float64) float64 {
	return 0.5 * w * w
}

func (L2) Derivative(w float64) float64 {
	return w
}

func (L2) Prunes() bool { return false }
