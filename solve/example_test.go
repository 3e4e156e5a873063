// Package solve_test provides runnable examples for the order → solve
// pipeline, each verifiable via "go test -run Example".
package solve_test

import (
	"fmt"

	"github.com/katalvlaran/planar/figure"
	"github.com/katalvlaran/planar/order"
	"github.com/katalvlaran/planar/solve"
)

// ExampleBrute places the minimal figure: two points ten units apart.
// The root pins the origin and the orbiter takes the canonical +x spot.
func ExampleBrute() {
	fig := figure.New()
	a, b := fig.NewPoint(), fig.NewPoint()
	if _, err := fig.AddConstraint(figure.Distance{Measure: 10}, a, b); err != nil {
		fmt.Println("error:", err)
		return
	}

	plan, err := order.BFS(fig)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	pos, err := solve.Brute(plan)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(pos[a], pos[b])
	// Output: (0.00, 0.00) (10.00, 0.00)
}

// ExampleBrute_equilateral solves three unit distances into a triangle;
// the apex resolves to the upper branch.
func ExampleBrute_equilateral() {
	fig := figure.New()
	a, b, c := fig.NewPoint(), fig.NewPoint(), fig.NewPoint()
	for _, pair := range [][2]figure.PID{{a, b}, {b, c}, {c, a}} {
		if _, err := fig.AddConstraint(figure.Distance{Measure: 1}, pair[0], pair[1]); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	plan, err := order.BFS(fig)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	pos, err := solve.Brute(plan)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(pos[a], pos[b], pos[c])
	// Output: (0.00, 0.00) (1.00, 0.00) (0.50, 0.87)
}
