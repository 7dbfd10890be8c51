package tsp

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"
)

// Option customizes a Population.
type Option func(*options)

type options struct {
	logger    *log.Logger
	observers []Observer
	reporters ReporterSet
}

// WithLogger sets the logger used for warnings, checkpoint messages and
// tracing. The default writes to stdout.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithObserver adds an observer that sees every fitness evaluation.
func WithObserver(observer Observer) Option {
	return func(o *options) { o.observers = append(o.observers, observer) }
}

// WithReporter adds a generation reporter.
func WithReporter(reporter Reporter) Option {
	return func(o *options) { o.reporters = append(o.reporters, reporter) }
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.New(os.Stdout, "", 0)
	}
	return o
}

// Population holds the state of the evolutionary process.
type Population struct {
	Config     *Config
	Instance   *Instance
	Routes     []Route   // current generation
	Costs      []float64 // Costs[i] is the cost of Routes[i]
	Generation int
	RunID      uuid.UUID

	Reproduction *Reproduction
	Evaluator    *Evaluator
	Reporters    ReporterSet
	Logger       *log.Logger
	Warnings     []error

	source *rand.PCG
}

// NewPopulation validates config and inst, then creates and evaluates the
// initial generation using the seed in config.Run.Seed.
func NewPopulation(config *Config, inst *Instance, opts ...Option) (*Population, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if inst == nil || inst.N() == 0 {
		return nil, fmt.Errorf("%w: instance is empty", ErrInvalidInput)
	}

	p := newPopulation(config, inst, NewSource(config.Run.Seed), buildOptions(opts))
	p.RunID = uuid.New()
	p.setRoutes(p.Reproduction.CreateNewPopulation(inst.N(), config.GA.PopulationSize))
	return p, nil
}

func newPopulation(config *Config, inst *Instance, source *rand.PCG, o *options) *Population {
	rng := rand.New(source)

	observers := o.observers
	if config.Run.Trace {
		observers = append(observers, traceObserver{logger: o.logger})
	}
	var observer Observer
	switch len(observers) {
	case 0:
	case 1:
		observer = observers[0]
	default:
		observer = multiObserver(observers)
	}

	p := &Population{
		Config:       config,
		Instance:     inst,
		Reproduction: NewReproduction(&config.GA, inst.N(), rng),
		Evaluator:    NewEvaluator(inst, observer),
		Reporters:    o.reporters,
		Logger:       o.logger,
		source:       source,
	}

	if nonStart := inst.N() - 1; nonStart < minCrossoverCities {
		w := &DegenerateInputWarning{NonStartCities: nonStart}
		p.Warnings = append(p.Warnings, w)
		p.Logger.Printf("Warning: %v", w)
	}
	return p
}

// setRoutes evaluates routes and installs them as the current generation.
func (p *Population) setRoutes(routes []Route) {
	costs := make([]float64, len(routes))
	for i, r := range routes {
		costs[i] = p.Evaluator.Evaluate(r)
	}
	p.Routes, p.Costs = routes, costs
}

// RunGeneration replaces the whole population with a new generation bred
// from the current one. The best route is not carried over.
func (p *Population) RunGeneration() {
	p.Generation++
	p.Reporters.StartGeneration(p.Generation)

	next := p.Reproduction.Reproduce(p.Routes, p.Costs, p.Config.GA.PopulationSize)
	p.setRoutes(next)

	p.Reporters.EndGeneration(p.Generation, ComputeStats(p.Generation, p.Costs))
}

// Run executes n generations, saving a checkpoint every
// Config.Run.CheckpointInterval generations when the interval is positive.
func (p *Population) Run(n int) error {
	interval := p.Config.Run.CheckpointInterval
	for i := 0; i < n; i++ {
		p.RunGeneration()
		if interval > 0 && p.Generation%interval == 0 {
			path := fmt.Sprintf("%s_gen%d.gz", p.Config.Run.CheckpointPrefix, p.Generation)
			if err := p.SaveCheckpoint(path); err != nil {
				return fmt.Errorf("checkpoint at generation %d failed: %w", p.Generation, err)
			}
		}
	}
	return nil
}

// Best returns a copy of the cheapest route of the current generation and
// its cost. Ties go to the earliest route.
func (p *Population) Best() (Route, float64) {
	best := 0
	for i := 1; i < len(p.Costs); i++ {
		if p.Costs[i] < p.Costs[best] {
			best = i
		}
	}
	return p.Routes[best].Copy(), p.Costs[best]
}
