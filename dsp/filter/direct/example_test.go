package direct_test

import (
	"fmt"

	"github.com/cwbudde/algo-sigkit/dsp/filter/direct"
)

func ExampleFilter() {
	c := direct.Coefficients[float64]{B: []float64{1}, A: []float64{1, -0.5}}
	y := make([]float64, 5)
	direct.Filter([]float64{1}, y, c)
	fmt.Println(y)
	// Output: [1 0.5 0.25 0.125 0.0625]
}

func ExampleStream() {
	s, err := direct.NewStream(direct.Coefficients[int]{B: []int{1, 1}})
	if err != nil {
		panic(err)
	}
	block := []int{1, 2, 3}
	s.ProcessBlock(block)
	fmt.Println(block, s.ProcessSample(4))
	// Output: [1 3 5] 7
}

func ExampleBiDirectional() {
	c := direct.Coefficients[float64]{B: []float64{0.5}, A: []float64{1, -0.5}}
	x := make([]float64, 9)
	x[4] = 1
	direct.BiDirectional(x, x, c)
	fmt.Printf("%.4f %.4f %.4f\n", x[3], x[4], x[5])
	// Output: 0.1667 0.3333 0.1667
}
