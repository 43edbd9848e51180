package lgp

import (
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Driver owns the pieces needed to run a genetic algorithm: how to generate a
// fresh organism, the lifecycle hooks, how many workers may evaluate
// fitness concurrently, and the random generator used to build the initial
// population and during variation. Workers should be 1 for fitness evaluators
// that share mutable state (qlearning's shared Env); classification's
// stateless evaluator may use more.
type Driver[O Organism[O, F, G], F any, G any] struct {
	Generate func(rng *rand.Rand, params G) O
	Hooks    EventHooks[O, F, G]
	Workers  int
	rng      *rand.Rand
}

// NewDriver constructs a Driver with its own seeded random generator. A
// single Driver (and the generator it owns) should be used for one run;
// the generator is not safe for concurrent sampling, which is why
// initial population generation and variation -- the only places that
// sample it -- always run single-threaded.
func NewDriver[O Organism[O, F, G], F any, G any](generate func(*rand.Rand, G) O, hooks EventHooks[O, F, G], workers int, seed int64) *Driver[O, F, G] {
	if workers < 1 {
		workers = 1
	}
	return &Driver[O, F, G]{
		Generate: generate,
		Hooks:    hooks,
		Workers:  workers,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Iterator pulls one generation at a time from a run. Calling Next
// advances the run by exactly one generation and yields the ranked,
// pre-variation snapshot of the population, per original_source's
// GeneticAlgorithmIter::next.
type Iterator[O Organism[O, F, G], F any, G any] struct {
	driver     *Driver[O, F, G]
	params     HyperParameters[F, G]
	population *Population[O]
	generation int
	done       bool

	mu     sync.Mutex
	latest *Population[O]
}

// Iterator validates params, builds the initial population, and returns an
// Iterator ready to yield n_generations+1 snapshots.
func (d *Driver[O, F, G]) Iterator(params HyperParameters[F, G]) (*Iterator[O, F, G], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	d.Hooks.firePreInit(&params)

	pop := NewPopulation[O](params.PopulationSize)
	for i := 0; i < params.PopulationSize; i++ {
		pop.Push(d.Generate(d.rng, params.ProgramParams))
	}

	return &Iterator[O, F, G]{
		driver:     d,
		params:     params,
		population: pop,
	}, nil
}

// Next advances the run by one generation. ok is false once n_generations+1
// snapshots have been yielded; err is non-nil only on a fatal assertion
// failure (e.g. an organism escaping fitness evaluation).
func (it *Iterator[O, F, G]) Next() (snapshot *Population[O], ok bool, err error) {
	if it.done || it.generation > it.params.NGenerations {
		return nil, false, nil
	}

	it.driver.Hooks.firePreEvalFitness(it.population, &it.params)
	if err := evalFitness(it.population, &it.params.FitnessParams, it.driver.Workers); err != nil {
		it.done = true
		return nil, false, err
	}

	it.driver.Hooks.firePreRank(it.population, &it.params)
	it.population.Sort()
	it.driver.Hooks.firePostRank(it.population, &it.params)

	if !it.population.AllEvaluated() {
		it.done = true
		return nil, false, ErrNotAllEvaluated
	}

	result := it.population.Clone()

	it.mu.Lock()
	it.latest = result
	it.mu.Unlock()

	if it.generation < it.params.NGenerations {
		survive(it.population, it.params)
		variation(it.driver.rng, it.population, it.params)
	}

	it.generation++
	if it.generation > it.params.NGenerations {
		it.done = true
	}
	return result, true, nil
}

// evalFitness scores every organism in pop. When workers > 1 organisms are
// evaluated concurrently via a bounded errgroup, which is only safe when
// params carries no organism-shared mutable state (classification.Parameters
// holds only read-only inputs; qlearning.Parameters holds a shared Env and
// must be run with workers == 1).
func evalFitness[O Organism[O, F, G], F any, G any](pop *Population[O], params *F, workers int) error {
	if workers <= 1 {
		for _, m := range pop.Members {
			m.EvalFitness(params)
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, m := range pop.Members {
		m := m
		g.Go(func() error {
			m.EvalFitness(params)
			return nil
		})
	}
	return g.Wait()
}

// survive drops the worst NToDrop members: OutOfBounds organisms are
// dropped first (regardless of rank order among themselves), then the
// truncation continues from the worst end until Gap has been honored.
func survive[O Organism[O, F, G], F any, G any](pop *Population[O], params HyperParameters[F, G]) {
	toDrop := params.NToDrop()
	if toDrop <= 0 {
		return
	}

	kept := make([]O, 0, len(pop.Members))
	dropped := 0
	for _, m := range pop.Members {
		if dropped < toDrop && m.Fitness().IsInvalid() {
			dropped++
			continue
		}
		kept = append(kept, m)
	}
	for dropped < toDrop && len(kept) > 0 {
		kept = kept[1:]
		dropped++
	}
	pop.Members = kept
}

// variation refills the population back to PopulationSize by crossover,
// mutation, and cloning of uniformly chosen survivors, matching
// original_source's variation: for each uniformly sampled pair, a
// crossover push and a mutation push are independent -- both happen
// whenever their respective counters are still positive, each producing
// its own offspring -- and any remaining capacity is padded with
// DuplicateNew clones.
func variation[O Organism[O, F, G], F any, G any](rng *rand.Rand, pop *Population[O], params HyperParameters[F, G]) {
	remaining := params.PopulationSize - pop.Len()
	if remaining <= 0 {
		return
	}

	nCrossovers := int(params.CrossoverPercent * float64(remaining))
	nMutations := int(params.MutationPercent * float64(remaining))

	offspring := make([]O, 0, remaining)
	survivors := pop.Members

	pick := func() O { return survivors[rng.Intn(len(survivors))] }

	for len(offspring) < remaining && (nCrossovers > 0 || nMutations > 0) {
		a, b := pick(), pick()

		if nCrossovers > 0 && len(offspring) < remaining {
			children := a.TwoPointCrossover(rng, b)
			offspring = append(offspring, children[rng.Intn(2)])
			nCrossovers--
		}

		if nMutations > 0 && len(offspring) < remaining {
			parent := a
			if rng.Intn(2) == 1 {
				parent = b
			}
			offspring = append(offspring, parent.Mutate(rng, params.ProgramParams))
			nMutations--
		}
	}

	for len(offspring) < remaining {
		offspring = append(offspring, pick().DuplicateNew())
	}

	pop.Members = append(pop.Members, offspring...)
}

// Latest returns the most recent snapshot produced by Next, or nil if Next
// has not yet been called. Safe to call concurrently with Next, so a
// caller running the iterator via Channel can pass Latest to Watch to
// observe fitness statistics without blocking the generation loop.
func (it *Iterator[O, F, G]) Latest() *Population[O] {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.latest
}

// Channel bridges the pull iterator to a channel of snapshots, for callers
// that prefer to range over generations. The background pull goroutine
// stops when the run ends or when done is closed; a caller that stops
// receiving without closing done leaves it blocked on its next send. Errors surfaced by
// Next are dropped from the channel; callers needing them should call Next
// directly instead.
func (it *Iterator[O, F, G]) Channel(done <-chan struct{}) <-chan *Population[O] {
	out := make(chan *Population[O])
	go func() {
		defer close(out)
		for {
			snapshot, ok, err := it.Next()
			if err != nil || !ok {
				return
			}
			select {
			case out <- snapshot:
			case <-done:
				return
			}
		}
	}()
	return out
}
