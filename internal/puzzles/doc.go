// Package puzzles owns the solver contract shared by every day package.
//
// Ownership boundary:
// - puzzle metadata shape
// - solver execution interface
// - local solver registry primitives
// - timed, logged execution of one or many solvers
//
// Solvers are independent. Nothing here carries state from one puzzle to
// another; the registry only maps identifiers to solvers.
package puzzles
