package main

import (
	"fmt"

	"gorgonia.org/tensor"

	"playnn/neuralnet"
)

// dataset returns a small XOR-style point cloud: 2-D points in the four
// quadrants, labeled +1 when x and y share a sign and -1 otherwise.
func dataset() (tensor.Tensor, []float64) {
	points := []float64{
		0.8, 0.9,
		0.6, 0.4,
		-0.7, -0.8,
		-0.5, -0.9,
		-0.8, 0.7,
		-0.4, 0.6,
		0.9, -0.6,
		0.5, -0.8,
	}
	labels := []float64{1, 1, 1, 1, -1, -1, -1, -1}
	t := tensor.New(tensor.WithShape(len(labels), 2), tensor.WithBacking(points))
	return t, labels
}

func main() {
	points, labels := dataset()

	n := points.Shape()[0]
	inputs := make([][]float64, n)
	for i := 0; i < n; i++ {
		x, err := points.At(i, 0)
		if err != nil {
			fmt.Println("Error reading dataset:", err)
			return
		}
		y, err := points.At(i, 1)
		if err != nil {
			fmt.Println("Error reading dataset:", err)
			return
		}
		inputs[i] = []float64{x.(float64), y.(float64)}
	}

	net := neuralnet.NewNetwork([]int{2, 4, 2, 1}, neuralnet.Tanh{}, neuralnet.Tanh{},
		neuralnet.L1{}, []string{"x1", "x2"}, false)
	trainer := neuralnet.NewTrainer(0.03, 0.001)

	for epoch := 0; epoch <= 400; epoch++ {
		loss, err := trainer.TrainBatch(net, inputs, labels)
		if err != nil {
			fmt.Println("Error training:", err)
			return
		}
		if epoch%50 == 0 {
			fmt.Println(fmt.Sprintf("Loss %d = %.4f", epoch, loss))
		}
	}

	dead := 0
	net.ForEachNode(true, func(node *neuralnet.Node) {
		for _, link := range node.InputLinks {
			if link.IsDead {
				dead++
			}
		}
	})
	fmt.Println(fmt.Sprintf("Dead links after training: %d", dead))
}
