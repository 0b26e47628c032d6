package puzzles

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const maxDay = 25

// Registry stores solvers by stable identifier.
type Registry struct {
	items map[string]Solver
}

// NewRegistry creates an empty puzzle registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Solver)}
}

// FormatID returns the canonical identifier for a day number.
func FormatID(day int) string {
	return fmt.Sprintf("day%02d", day)
}

// ParseDay accepts "7", "07", "day7" and "day07" and returns the day number.
func ParseDay(raw string) (int, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	v = strings.TrimPrefix(v, "day")
	day, err := strconv.Atoi(v)
	if err != nil || day < 1 || day > maxDay {
		return 0, fmt.Errorf("%w: %q", ErrPuzzleNotFound, raw)
	}
	return day, nil
}

// ParseID is ParseDay returning the canonical id.
func ParseID(raw string) (string, error) {
	day, err := ParseDay(raw)
	if err != nil {
		return "", err
	}
	return FormatID(day), nil
}

// ValidateMetadata checks required metadata fields and id format.
func ValidateMetadata(meta Metadata) error {
	id := strings.TrimSpace(meta.ID)
	title := strings.TrimSpace(meta.Title)
	desc := strings.TrimSpace(meta.Description)
	if id == "" || title == "" || desc == "" {
		return fmt.Errorf("%w: id, title, and description are required", ErrInvalidMetadata)
	}
	if !isValidID(id) {
		return fmt.Errorf("%w: invalid id format %q", ErrInvalidMetadata, id)
	}
	if meta.Day < 1 || meta.Day > maxDay {
		return fmt.Errorf("%w: day %d out of range", ErrInvalidMetadata, meta.Day)
	}
	if id != FormatID(meta.Day) {
		return fmt.Errorf("%w: id %q does not match day %d", ErrInvalidMetadata, id, meta.Day)
	}
	return nil
}

// Register adds a solver to the registry.
func (r *Registry) Register(solver Solver) error {
	if solver == nil {
		return ErrSolverNil
	}

	meta := solver.Metadata()
	if err := ValidateMetadata(meta); err != nil {
		return err
	}

	if _, ok := r.items[meta.ID]; ok {
		return fmt.Errorf("%w: %s", ErrPuzzleExists, meta.ID)
	}
	r.items[meta.ID] = solver
	return nil
}

// Resolve returns a solver by id.
func (r *Registry) Resolve(id string) (Solver, bool) {
	solver, ok := r.items[id]
	return solver, ok
}

// ResolveDay returns the solver registered for a day number.
func (r *Registry) ResolveDay(day int) (Solver, bool) {
	return r.Resolve(FormatID(day))
}

// Lookup parses a loose day reference and resolves it.
func (r *Registry) Lookup(raw string) (Solver, error) {
	id, err := ParseID(raw)
	if err != nil {
		return nil, err
	}
	solver, ok := r.Resolve(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPuzzleNotFound, id)
	}
	return solver, nil
}

// ListMetadata returns deterministic metadata ordering by day.
func (r *Registry) ListMetadata() []Metadata {
	list := make([]Metadata, 0, len(r.items))
	for _, solver := range r.items {
		list = append(list, solver.Metadata())
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Day < list[j].Day
	})
	return list
}

// Len reports how many solvers are registered.
func (r *Registry) Len() int {
	return len(r.items)
}

func isValidID(id string) bool {
	if id == "" {
		return false
	}
	lastSep := false
	for i := 0; i < len(id); i++ {
		c := id[i]
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		isSep := c == '.' || c == '-' || c == '_'
		if !(isLower || isDigit || isSep) {
			return false
		}
		if i == 0 || i == len(id)-1 {
			if isSep {
				return false
			}
		}
		if isSep && lastSep {
			return false
		}
		lastSep = isSep
	}
	return true
}
