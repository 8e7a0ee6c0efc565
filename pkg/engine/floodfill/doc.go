// Package floodfill computes breadth-first distances over one layer of a
// world.Grid.
//
// What:
//
//   - New snapshots a grid layer, classifies every cell as wall or open using a
//     world.CharSet, and settles open cells outward from a goal in 4-connected
//     wavefronts.
//   - DistanceFrom, ShortestPathFrom, Visit and Walk query the result.
//
// Why:
//
//   - Room detection runs one fill per connected room.
//   - Level pipelines place exits at the furthest reachable cell.
//   - Shortest paths sample uniformly among all equally short routes, so a
//     seeded *rand.Rand reproduces the same route.
//
// Complexity:
//
//   - New:              O(W×H), Memory: O(W×H).
//   - ShortestPathFrom: O(d) for a cell at distance d.
//
// A FloodFill never changes after New returns; rebuild it when the grid changes.
package floodfill
