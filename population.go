package lgp

import "sort"

// Population is a bounded, fitness-ordered collection of organisms. It
// generalizes the teacher's View ([]Genome with Max/Min) to any organism
// satisfying Fit, and adds the sort, rank-accessor and PopWorst operations
// the driver needs.
type Population[O Fit] struct {
	Members  []O
	Capacity int
}

// NewPopulation allocates an empty population with room for capacity
// members.
func NewPopulation[O Fit](capacity int) *Population[O] {
	return &Population[O]{Members: make([]O, 0, capacity), Capacity: capacity}
}

// Len returns the current member count.
func (p *Population[O]) Len() int { return len(p.Members) }

// Push appends an organism, growing past Capacity if necessary (Capacity is
// a target size, not a hard ceiling enforced here).
func (p *Population[O]) Push(o O) { p.Members = append(p.Members, o) }

// Sort orders members ascending by fitness, so Members[0] is the worst and
// Members[len-1] is the best. Ties are left in their prior relative order.
func (p *Population[O]) Sort() {
	sort.SliceStable(p.Members, func(i, j int) bool {
		return p.Members[i].Fitness().Less(p.Members[j].Fitness())
	})
}

// Best returns the highest-fitness member. The population must be sorted
// and non-empty.
func (p *Population[O]) Best() (O, error) {
	var zero O
	if len(p.Members) == 0 {
		return zero, ErrEmptyPopulation
	}
	return p.Members[len(p.Members)-1], nil
}

// Worst returns the lowest-fitness member. The population must be sorted
// and non-empty.
func (p *Population[O]) Worst() (O, error) {
	var zero O
	if len(p.Members) == 0 {
		return zero, ErrEmptyPopulation
	}
	return p.Members[0], nil
}

// Median returns the middle member by rank. The population must be sorted
// and non-empty.
func (p *Population[O]) Median() (O, error) {
	var zero O
	if len(p.Members) == 0 {
		return zero, ErrEmptyPopulation
	}
	return p.Members[len(p.Members)/2], nil
}

// AllEvaluated reports whether every member carries a fitness score other
// than NotEvaluated.
func (p *Population[O]) AllEvaluated() bool {
	for _, m := range p.Members {
		if m.Fitness().IsNotEvaluated() {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy of the population: same member values (which
// for pointer organism types still alias the underlying organisms), new
// backing slice. Used to snapshot a generation before variation mutates it.
func (p *Population[O]) Clone() *Population[O] {
	members := make([]O, len(p.Members))
	copy(members, p.Members)
	return &Population[O]{Members: members, Capacity: p.Capacity}
}

// PopWorst removes and returns the current worst (index 0) member. The
// population must be sorted.
func (p *Population[O]) PopWorst() (O, error) {
	var zero O
	if len(p.Members) == 0 {
		return zero, ErrEmptyPopulation
	}
	worst := p.Members[0]
	p.Members = p.Members[1:]
	return worst, nil
}
