// Package graph provides the state space and reward model that Q-learning
// explores.
//
// Overview:
//
//   - A fixed set of N symbolic locations is mapped 1:1 onto dense state
//     indices [0, N) in declaration order (Index). Encode/Decode round-trip
//     losslessly for every declared location.
//   - Edge declarations are written into an N×N reward matrix:
//     reward[i][j] > 0 iff the transition i→j is legal. Undirected edges are
//     mirrored, self-loops are legal and written once.
//   - Construction validates the whole definition and reports every
//     violation at once under ErrConfiguration.
//   - A Model is immutable; WithReward derives a modified copy for
//     goal-specific reward shaping.
//
// Reference instance:
//
//	Warehouse() builds the 12-bay warehouse A..L used throughout the tests and
//	examples, with a bonus of 1000 on the priority bay G.
//
// Example:
//
//	m, err := graph.New(3,
//	    []graph.Location{"A", "B", "C"},
//	    []graph.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}},
//	)
//	if err != nil {
//	    log.Fatal(err) // errors.Is(err, graph.ErrConfiguration)
//	}
//	i, _ := m.Encode("B") // 1
//
// Thread safety:
//
//   - Model and Index are read-only after construction and may be shared
//     across goroutines.
package graph
