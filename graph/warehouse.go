package graph

// Reference warehouse: twelve bays A..L connected by aisles, with the
// priority bay G rewarded through its self-loop.
//
//	A───B───C   D
//	    │   │   │
//	E   F   G───H
//	│   │       │
//	I───J───K───L
const (
	// WarehouseSize is the number of bays in the reference warehouse.
	WarehouseSize = 12

	// WarehouseGoal is the priority bay of the reference warehouse.
	WarehouseGoal Location = "G"

	// WarehouseGoalReward is the bonus written on the goal's self-loop.
	WarehouseGoalReward = 1000.0
)

// WarehouseLocations returns the bays A..L in state order.
func WarehouseLocations() []Location {
	return []Location{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
}

// WarehouseEdges returns the aisle declarations of the reference warehouse:
// twelve undirected aisles with the default reward plus the directed goal
// self-loop on G.
func WarehouseEdges() []Edge {
	return []Edge{
		{From: "A", To: "B"},
		{From: "B", To: "C"},
		{From: "B", To: "F"},
		{From: "C", To: "G"},
		{From: "D", To: "H"},
		{From: "E", To: "I"},
		{From: "F", To: "J"},
		{From: "G", To: "H"},
		{From: "H", To: "L"},
		{From: "I", To: "J"},
		{From: "J", To: "K"},
		{From: "K", To: "L"},
		{From: WarehouseGoal, To: WarehouseGoal, Reward: WarehouseGoalReward, Directed: true},
	}
}

// Warehouse builds the reference warehouse model.
func Warehouse() (*Model, error) {
	return New(WarehouseSize, WarehouseLocations(), WarehouseEdges())
}

// WarehouseAisles builds the reference warehouse without any goal bonus:
// every aisle carries the default reward and no location is preferred.
// Goal-specific rewards are layered on top with Model.WithReward.
func WarehouseAisles() (*Model, error) {
	edges := WarehouseEdges()
	return New(WarehouseSize, WarehouseLocations(), edges[:len(edges)-1])
}
