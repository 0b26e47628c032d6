package puzzles

import "errors"

var (
	ErrPuzzleExists    = errors.New("puzzle already registered")
	ErrSolverNil       = errors.New("solver is nil")
	ErrInvalidMetadata = errors.New("invalid puzzle metadata")
	ErrPuzzleNotFound  = errors.New("puzzle not found")
	ErrInvalidPart     = errors.New("invalid puzzle part")
	ErrMalformedInput  = errors.New("malformed puzzle input")
	ErrNoExample       = errors.New("no example for part")
	ErrExampleMismatch = errors.New("example answer mismatch")
)
