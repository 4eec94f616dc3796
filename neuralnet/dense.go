package neuralnet

import "gonum.org/v1/gonum/mat"

// Dense snapshots of network state for collaborators that want matrices rather
// than graph walks (rendering, statistics). All of these copy; mutating the
// returned values does not touch the network.

// LayerWeights returns the weights feeding layer l as an N x M matrix, where N
// is the size of layer l and M the size of layer l-1. Dead links show up as 0.
// l must be >= 1; the input layer has no incoming weights.
func (n *Network) LayerWeights(l int) *mat.Dense {
	layer := n.Layers[l]
	rows := len(layer)
	cols := len(n.Layers[l-1])
	weights := make([]float64, rows*cols)
	for i, node := range layer {
		for j, link := range node.InputLinks {
			weights[i*cols+j] = link.Weight
		}
	}
	return mat.NewDense(rows, cols, weights)
}

// LayerBiases returns the biases of layer l as a vector.
func (n *Network) LayerBiases(l int) *mat.VecDense {
	layer := n.Layers[l]
	biases := mat.NewVecDense(len(layer), nil)
	for i, node := range layer {
		biases.SetVec(i, node.Bias)
	}
	return biases
}

// LayerOutputs returns the outputs of layer l as computed by the last Forward.
func (n *Network) LayerOutputs(l int) *mat.VecDense {
	layer := n.Layers[l]
	outputs := mat.NewVecDense(len(layer), nil)
	for i, node := range layer {
		outputs.SetVec(i, node.Output)
	}
	return outputs
}
