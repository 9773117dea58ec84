package core_test

import (
	"fmt"

	"github.com/gopherforge/chromabench/core"
)

// Example builds the 5-cycle C5 and checks a 3-colouring for validity.
func Example() {
	g, err := core.New(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	if err != nil {
		panic(err)
	}

	c := core.Coloring{0, 1, 0, 1, 2}
	fmt.Println(g.IsValid(c), c.NumColors())
	// Output: true 3
}
