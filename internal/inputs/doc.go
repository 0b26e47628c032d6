// Package inputs loads personal puzzle inputs.
//
// Ownership boundary:
// - on-disk cache layout (one dayNN.txt per day under a root directory)
// - remote fetch from adventofcode.com with the account session cookie
// - retry policy for transient remote failures
//
// Solvers never see this package; callers hand them plain strings.
package inputs
