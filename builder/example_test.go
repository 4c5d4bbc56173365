package builder_test

import (
	"fmt"

	"github.com/katalvlaran/vitrite/builder"
)

// ExampleBuildGraph composes two fixtures into one graph with two components.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, nil,
		builder.Cycle(6),
		builder.PlatonicSolid(builder.Tetrahedron, false),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Order(), g.Size())
	// Output:
	// 10 12
}
