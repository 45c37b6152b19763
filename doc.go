// Package hypergo provides an embeddable, in-memory recursive directed
// hyper-multigraph for Go.
//
// A hypergraph stores four kinds of elements:
//
//   - Nodes: plain vertices carrying a value
//   - Hyperedges: vertices joining other elements, created together with two
//     anchor links that tie them to their endpoints
//   - Links: directed connections; every link touches exactly one hyperedge
//   - Nested hypergraphs: whole hypergraphs stored as elements, recursively
//
// Every element is addressed by a path of local ids leading from the root
// down to it, e.g. [5 0] for element 0 inside nested hypergraph 5. Local ids
// are never reused, so paths stay stable across removals.
//
// # Quick Start
//
//	db := hypergo.New[string]()
//
//	zero, _ := db.AddNode("zero")
//	one, _ := db.AddNode("one")
//	edge, _ := db.AddEdge(zero, one, "two")
//
//	w, _ := db.Neighbors(zero)
//	for id, ok := w.Next(); ok; id, ok = w.Next() {
//	    fmt.Println(id) // [2], the hyperedge
//	}
//
//	_ = edge
//
// # Snapshots
//
// Hypergraphs can be saved to any io.Writer or blob store and restored
// later. Snapshot files are self-describing and checksummed:
//
//	var buf bytes.Buffer
//	_ = db.SaveSnapshot(ctx, &buf)
//
//	restored, _ := hypergo.LoadSnapshot[string](ctx, &buf)
//
// # Concurrency
//
// All methods of Hypergo are safe for concurrent use. The underlying
// hyper.Graph, reachable through Graph(), is safe for concurrent readers
// only.
package hypergo
