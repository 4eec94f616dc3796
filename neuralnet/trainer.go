package neuralnet

import "github.com/pkg/errors"

// Trainer drives the per-batch contract for callers that do not need their own
// loop: one Forward/Backward per example, one Update per batch. The engine
// itself never loops; the trainer is a caller-side convenience.
type Trainer struct {
	Lr      float64
	RegRate float64
	// Decay multiplies Lr after every batch when > 0.
	Decay   float64
	ErrorFn ErrorFunction
}

// NewTrainer returns a trainer with squared error and no learning-rate decay.
func NewTrainer(lr, regRate float64) *Trainer {
	return &Trainer{Lr: lr, RegRate: regRate, ErrorFn: SquaredError{}}
}

// TrainBatch accumulates gradients over all examples, applies one update and
// returns the mean error over the batch, measured before the update.
func (t *Trainer) TrainBatch(n *Network, inputs [][]float64, targets []float64) (float64, error) {
	if len(inputs) == 0 {
		return 0, errors.New("empty batch")
	}
	if len(inputs) != len(targets) {
		return 0, errors.Errorf("got %d inputs for %d targets", len(inputs), len(targets))
	}
	var loss float64
	for i := range inputs {
		output, err := n.Forward(inputs[i])
		if err != nil {
			return 0, err
		}
		loss += t.ErrorFn.Error(output, targets[i])
		n.Backward(targets[i], t.ErrorFn)
	}
	n.Update(t.Lr, t.RegRate)
	if t.Decay > 0 {
		t.Lr *= t.Decay
	}
	return loss / float64(len(inputs)), nil
}
