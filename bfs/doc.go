// Package bfs explores a graph.Model breadth-first from one location.
//
// The result holds the hop distance of every reached location, the BFS parent
// links and the visit order. Because neighbours are taken from the model's
// playable sets in ascending state order, the tree is deterministic and
// PathTo returns the lowest-index shortest route.
//
// Self-loops are never followed: they do not move the agent.
//
// Typical uses:
//
//   - reachability checks before training a value table towards a goal;
//   - the hop-optimal baseline that a learned route can be compared against.
//
// Complexity: O(N + E) per search, E = number of legal transitions.
package bfs
