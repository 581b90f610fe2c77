// Package search walks a maze from its start cell to its goal cell and
// reconstructs the solution path.
//
// One engine serves both traversal orders. The only difference between
// depth-first and breadth-first search is the Frontier that holds pending
// entries: a Stack pops the newest entry, a Queue the oldest.
//
// Loop:
//
//  1. Push (start, no parent).
//  2. Pop an entry. If it is the goal, record its parent, append it to the
//     trace and stop.
//  3. If its cell was already seen, drop it.
//  4. Otherwise record its parent, mark it seen, append it to the trace and
//     push every linked neighbour (left, right, up, down) with this cell as
//     parent.
//  5. An empty frontier before the goal is ErrNoPath.
//
// The goal test runs before the seen test. The path is the ancestor chain of
// the goal: goal's parent first, start last, goal itself excluded. When start
// and goal coincide the path is empty.
//
// The seen-set is a bitset over row-major cell indices.
//
// Complexity: O(V + E) time, O(V + E) frontier space.
package search
