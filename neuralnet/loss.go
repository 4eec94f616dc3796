package neuralnet

// ErrorFunction defines the interface for computing the per-example error and its gradient.
type ErrorFunction interface {
	// Error returns the error value given the model output and the target.
	Error(output, target float64) float64
	// Derivative returns the gradient ∂E/∂output.
	Derivative(output, target float64) float64
}

// SquaredError implements the squared error 0.5 * (output - target)^2.
type SquaredError struct{}

func (SquaredError) Error(output, target float64) float64 {
	return 0.5 * (output - target) * (output - target)
}

// Derivative returns the derivative of the squared error wrt the output: (output - target).
func (SquaredError) Derivative(output, target float64) float64 {
	return output - target
}
