package tsp

// Observer receives every fitness evaluation performed during a run.
// It is a diagnostic hook; it cannot influence costs or random draws.
type Observer interface {
	Evaluated(route []string, cost float64)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(route []string, cost float64)

// Evaluated calls f.
func (f ObserverFunc) Evaluated(route []string, cost float64) { f(route, cost) }

// Evaluator scores routes of one instance by total traversal cost.
type Evaluator struct {
	inst        *Instance
	observer    Observer
	evaluations int
}

// NewEvaluator returns an evaluator for inst. observer may be nil.
func NewEvaluator(inst *Instance, observer Observer) *Evaluator {
	return &Evaluator{inst: inst, observer: observer}
}

// Cost returns the sum of consecutive edge costs along r. It is pure.
func (e *Evaluator) Cost(r Route) float64 {
	cost := 0.0
	for i := 0; i < len(r)-1; i++ {
		cost += e.inst.Distance(r[i], r[i+1])
	}
	return cost
}

// Evaluate is Cost plus bookkeeping: the evaluation is counted and reported
// to the observer, if any.
func (e *Evaluator) Evaluate(r Route) float64 {
	cost := e.Cost(r)
	e.evaluations++
	if e.observer != nil {
		e.observer.Evaluated(e.inst.Labels(r), cost)
	}
	return cost
}

// Evaluations returns how many times Evaluate has been called.
func (e *Evaluator) Evaluations() int { return e.evaluations }
