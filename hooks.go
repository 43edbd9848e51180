package lgp

// EventHooks lets a caller observe or extend the driver's phase transitions
// without subclassing the driver itself. Any hook left nil is a no-op,
// matching original_source's default GeneticAlgorithm trait methods
// (on_pre_init, on_pre_eval_fitness, on_pre_rank, on_post_rank).
type EventHooks[O Fit, F any, G any] struct {
	OnPreInit        func(params *HyperParameters[F, G])
	OnPreEvalFitness func(pop *Population[O], params *HyperParameters[F, G])
	OnPreRank        func(pop *Population[O], params *HyperParameters[F, G])
	OnPostRank       func(pop *Population[O], params *HyperParameters[F, G])
}

func (h EventHooks[O, F, G]) firePreInit(params *HyperParameters[F, G]) {
	if h.OnPreInit != nil {
		h.OnPreInit(params)
	}
}

func (h EventHooks[O, F, G]) firePreEvalFitness(pop *Population[O], params *HyperParameters[F, G]) {
	if h.OnPreEvalFitness != nil {
		h.OnPreEvalFitness(pop, params)
	}
}

func (h EventHooks[O, F, G]) firePreRank(pop *Population[O], params *HyperParameters[F, G]) {
	if h.OnPreRank != nil {
		h.OnPreRank(pop, params)
	}
}

func (h EventHooks[O, F, G]) firePostRank(pop *Population[O], params *HyperParameters[F, G]) {
	if h.OnPostRank != nil {
		h.OnPostRank(pop, params)
	}
}
