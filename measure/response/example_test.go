package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-bspline/dsp/filter/bspline"
	"github.com/cwbudde/algo-bspline/measure/response"
)

func ExampleMeter_Measure() {
	x := make([]float64, 400)
	for i := range x {
		x[i] = float64(i)
	}
	s, err := bspline.New(x, 20)
	if err != nil {
		panic(err)
	}
	m, err := response.NewMeter(s, response.Config{})
	if err != nil {
		panic(err)
	}

	pt, err := m.Measure(40)
	if err != nil {
		panic(err)
	}
	fmt.Printf("period=%.0f gain=%.2f expected=%.2f\n", pt.Period, pt.Gain, pt.Expected)

	// Output:
	// period=40 gain=0.80 expected=0.80
}
