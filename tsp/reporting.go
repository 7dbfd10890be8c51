package tsp

import (
	"log"
	"strings"
	"time"
)

// Reporter is notified as a run progresses.
type Reporter interface {
	StartGeneration(generation int)
	EndGeneration(generation int, stats GenerationStats)
	FoundSolution(generation int, route []string, cost float64)
}

// ReporterSet fans every notification out to its members in order.
type ReporterSet []Reporter

// StartGeneration notifies every member that a generation is starting.
func (rs ReporterSet) StartGeneration(generation int) {
	for _, r := range rs {
		r.StartGeneration(generation)
	}
}

// EndGeneration passes the statistics of a finished generation to every member.
func (rs ReporterSet) EndGeneration(generation int, stats GenerationStats) {
	for _, r := range rs {
		r.EndGeneration(generation, stats)
	}
}

// FoundSolution passes the final route of a run to every member.
func (rs ReporterSet) FoundSolution(generation int, route []string, cost float64) {
	for _, r := range rs {
		r.FoundSolution(generation, route, cost)
	}
}

// StdOutReporter writes progress lines to a logger, one block per generation.
type StdOutReporter struct {
	Logger *log.Logger
	// Every limits output to every n-th generation; 0 or 1 reports all.
	Every int

	genStart time.Time
}

// NewStdOutReporter returns a reporter writing to logger.
func NewStdOutReporter(logger *log.Logger, every int) *StdOutReporter {
	return &StdOutReporter{Logger: logger, Every: every}
}

func (r *StdOutReporter) show(generation int) bool {
	return r.Every <= 1 || generation%r.Every == 0
}

// StartGeneration prints the generation banner and starts its timer.
func (r *StdOutReporter) StartGeneration(generation int) {
	r.genStart = time.Now()
	if r.show(generation) {
		r.Logger.Printf("****** Generation %d ******", generation)
	}
}

// EndGeneration prints the cost summary and elapsed time of a generation.
func (r *StdOutReporter) EndGeneration(generation int, stats GenerationStats) {
	if !r.show(generation) {
		return
	}
	r.Logger.Printf(" Cost: best %.4f, mean %.4f, stdev %.4f, worst %.4f",
		stats.Best, stats.Mean, stats.Stdev, stats.Worst)
	r.Logger.Printf("Generation %d finished in %s", generation, time.Since(r.genStart))
}

// FoundSolution prints the final route regardless of Every.
func (r *StdOutReporter) FoundSolution(generation int, route []string, cost float64) {
	r.Logger.Printf("Best route after generation %d: %s (cost %.4f)", generation, strings.Join(route, " -> "), cost)
}

// StatisticsReporter records the statistics of every generation it sees.
type StatisticsReporter struct {
	Generations []GenerationStats
}

func (r *StatisticsReporter) StartGeneration(int) {}

// EndGeneration records stats.
func (r *StatisticsReporter) EndGeneration(_ int, stats GenerationStats) {
	r.Generations = append(r.Generations, stats)
}

func (r *StatisticsReporter) FoundSolution(int, []string, float64) {}

// BestCosts returns the best cost of each recorded generation, in order.
func (r *StatisticsReporter) BestCosts() []float64 {
	out := make([]float64, len(r.Generations))
	for i, s := range r.Generations {
		out[i] = s.Best
	}
	return out
}

// BestEver returns the lowest cost seen in any recorded generation. Since
// there is no elitism it can be lower than the final generation's best.
func (r *StatisticsReporter) BestEver() float64 {
	return MinFloat(r.BestCosts())
}

// traceObserver logs every evaluation.
type traceObserver struct {
	logger *log.Logger
}

func (o traceObserver) Evaluated(route []string, cost float64) {
	o.logger.Printf("Evaluated route: %s, cost: %v", strings.Join(route, " -> "), cost)
}

// multiObserver forwards evaluations to each member.
type multiObserver []Observer

func (m multiObserver) Evaluated(route []string, cost float64) {
	for _, o := range m {
		o.Evaluated(route, cost)
	}
}
