package query_test

import (
	"fmt"

	"github.com/maerskine/grix/core"
	"github.com/maerskine/grix/query"
)

// Build a directed triangle, check global connectivity, and reconstruct
// one shortest path — results come back as the caller's own vertex values.
func Example() {
	g, err := core.FromEdges([][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}},
		core.WithDirected[string](true))
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	defer g.Close()

	strong, _ := query.IsConnected(g, core.StronglyConnected)
	fmt.Println("strongly connected:", strong)

	path, edges, _ := query.ShortestPath(g, "A", "C", core.ModeOut)
	fmt.Println("path:", path)
	fmt.Println("edges:", edges)

	dist, _ := query.ShortestPaths(g, core.OneVertex("A"), core.OneVertex("C"), core.ModeOut)
	d := dist[query.VertexPair[string]{From: "A", To: "C"}]
	fmt.Println("hops:", d.Hops)

	// Output:
	// strongly connected: true
	// path: [A B C]
	// edges: [{A B} {B C}]
	// hops: 2
}
