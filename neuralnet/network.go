package neuralnet

import (
	"math/rand"
	"strconv"

	"github.com/pkg/errors"
)

// ErrShapeMismatch is returned by Forward when the input vector length differs
// from the input layer size. No network state is mutated in that case.
var ErrShapeMismatch = errors.New("input length does not match input layer size")

// Node is one computational unit. It caches the totals of the last forward pass
// and accumulates error derivatives across backward passes until the next Update.
type Node struct {
	ID         string
	InputLinks []*Link
	Outputs    []*Link
	Bias       float64

	// Refreshed by every forward pass.
	TotalInput float64
	Output     float64

	// Refreshed by every backward pass.
	OutputDer float64
	InputDer  float64

	// Accumulated across backward passes, reset only by Update.
	AccInputDer        float64
	NumAccumulatedDers int

	activation ActivationFunction
}

func newNode(id string, activation ActivationFunction, initZero bool) *Node {
	node := &Node{ID: id, activation: activation}
	if !initZero {
		node.Bias = 0.1
	}
	return node
}

// Link is a directed weighted connection between nodes in adjacent layers.
// A link that dies stays dead: its weight is pinned at 0 and backward/update
// passes skip it from then on.
type Link struct {
	ID     string
	Source *Node
	Dest   *Node
	Weight float64
	IsDead bool

	ErrorDer           float64
	AccErrorDer        float64
	NumAccumulatedDers int

	regularization RegularizationFunction
}

func newLink(source, dest *Node, regularization RegularizationFunction, initZero bool) *Link {
	link := &Link{
		ID:             source.ID + "-" + dest.ID,
		Source:         source,
		Dest:           dest,
		regularization: regularization,
	}
	if !initZero {
		link.Weight = rand.Float64() - 0.5
	}
	return link
}

// Network is an ordered sequence of layers, each an ordered sequence of nodes.
// Every node of a layer is connected to every node of the previous layer and
// the last layer holds the single output node.
type Network struct {
	Layers [][]*Node
}

// NewNetwork builds a fully connected layered network. shape lists the layer
// sizes input first, len(shape) >= 2 and the last entry is expected to be 1.
// inputIDs labels the input layer and must have shape[0] entries; the caller
// guarantees that, it is not validated here. All other node IDs are assigned
// sequentially. regularization may be nil for no weight decay. With initZero
// all weights and biases start at 0 instead of random weights and 0.1 biases.
func NewNetwork(shape []int, activation, outputActivation ActivationFunction,
	regularization RegularizationFunction, inputIDs []string, initZero bool) *Network {

	numLayers := len(shape)
	id := 1
	network := &Network{Layers: make([][]*Node, numLayers)}
	for layerIdx, size := range shape {
		isInputLayer := layerIdx == 0
		isOutputLayer := layerIdx == numLayers-1

		layer := make([]*Node, size)
		for i := 0; i < size; i++ {
			nodeID := strconv.Itoa(id)
			if isInputLayer {
				nodeID = inputIDs[i]
			} else {
				id++
			}
			act := activation
			if isOutputLayer {
				act = outputActivation
			}
			node := newNode(nodeID, act, initZero)
			layer[i] = node

			if !isInputLayer {
				for _, prev := range network.Layers[layerIdx-1] {
					link := newLink(prev, node, regularization, initZero)
					prev.Outputs = append(prev.Outputs, link)
					node.InputLinks = append(node.InputLinks, link)
				}
			}
		}
		network.Layers[layerIdx] = layer
	}
	return network
}

// OutputNode returns the single node of the last layer.
func (n *Network) OutputNode() *Node {
	return n.Layers[len(n.Layers)-1][0]
}

// Forward propagates inputs through the network and returns the output node's
// value. It overwrites every node's TotalInput and Output in place; nothing
// else is touched. Dead links carry a weight of exactly 0, so their
// contribution vanishes without an explicit check here.
func (n *Network) Forward(inputs []float64) (float64, error) {
	inputLayer := n.Layers[0]
	if len(inputs) != len(inputLayer) {
		return 0, errors.Wrapf(ErrShapeMismatch, "got %d inputs for an input layer of size %d",
			len(inputs), len(inputLayer))
	}
	for i, node := range inputLayer {
		node.Output = inputs[i]
	}
	for _, layer := range n.Layers[1:] {
		for _, node := range layer {
			total := node.Bias
			for _, link := range node.InputLinks {
				total += link.Weight * link.Source.Output
			}
			node.TotalInput = total
			node.Output = node.activation.Activate(total)
		}
	}
	return n.OutputNode().Output, nil
}

// Backward computes error derivatives for the forward pass that preceded it and
// adds them into the node and link accumulators. It never resets accumulators,
// so repeated Forward/Backward calls sum gradients over a mini-batch until
// Update averages and clears them.
func (n *Network) Backward(target float64, errorFn ErrorFunction) {
	output := n.OutputNode()
	output.OutputDer = errorFn.Derivative(output.Output, target)

	for layerIdx := len(n.Layers) - 1; layerIdx >= 1; layerIdx-- {
		layer := n.Layers[layerIdx]

		// Derivative wrt each node's total input.
		for _, node := range layer {
			node.InputDer = node.OutputDer * node.activation.Derivative(node.TotalInput)
			node.AccInputDer += node.InputDer
			node.NumAccumulatedDers++
		}

		// Derivative wrt each live incoming weight.
		for _, node := range layer {
			for _, link := range node.InputLinks {
				if link.IsDead {
					continue
				}
				link.ErrorDer = node.InputDer * link.Source.Output
				link.AccErrorDer += link.ErrorDer
				link.NumAccumulatedDers++
			}
		}

		if layerIdx == 1 {
			continue
		}
		// Derivative wrt each previous-layer node's output. Input-layer nodes
		// never get one, hence the stop at layer 1 above.
		for _, node := range n.Layers[layerIdx-1] {
			node.OutputDer = 0
			for _, link := range node.Outputs {
				node.OutputDer += link.Weight * link.Dest.InputDer
			}
		}
	}
}

// Update applies the accumulated derivatives, averaged over the number of
// backward passes since the last Update, then resets the accumulators. The
// gradient step runs first; weight decay follows when a regularization
// function is present. A pruning-kind decay (L1) that drives a weight through
// zero pins it at 0 and kills the link for good. Nodes and links with nothing
// accumulated are left untouched.
func (n *Network) Update(learningRate, regularizationRate float64) {
	for _, layer := range n.Layers[1:] {
		for _, node := range layer {
			if node.NumAccumulatedDers > 0 {
				node.Bias -= learningRate * node.AccInputDer / float64(node.NumAccumulatedDers)
				node.AccInputDer = 0
				node.NumAccumulatedDers = 0
			}
			for _, link := range node.InputLinks {
				if link.IsDead || link.NumAccumulatedDers == 0 {
					continue
				}
				link.Weight -= learningRate / float64(link.NumAccumulatedDers) * link.AccErrorDer
				if link.regularization != nil {
					regDer := link.regularization.Derivative(link.Weight)
					newWeight := link.Weight - learningRate*regularizationRate*regDer
					if link.regularization.Prunes() && link.Weight*newWeight < 0 {
						// The decay step crossed zero: prune.
						link.Weight = 0
						link.IsDead = true
					} else {
						link.Weight = newWeight
					}
				}
				link.AccErrorDer = 0
				link.NumAccumulatedDers = 0
			}
		}
	}
}

// ForEachNode visits every node once in layer-then-position order, optionally
// skipping the input layer. Meant for read-only consumers such as rendering.
func (n *Network) ForEachNode(ignoreInputs bool, f func(node *Node)) {
	for layerIdx, layer := range n.Layers {
		if ignoreInputs && layerIdx == 0 {
			continue
		}
		for _, node := range layer {
			f(node)
		}
	}
}
