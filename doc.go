// Package tspga approximates the fixed-start Traveling Salesperson Problem with
// a genetic algorithm.
//
// A run evolves a population of closed tours over a fixed number of
// generations. Every generation is built from scratch: two parents are picked
// by tournament selection, combined by order crossover (OX) and the child gets
// a swap mutation. There is no elitism, so the best tour of one generation can
// be lost in the next. The result is the cheapest tour of the final generation.
//
// The solver lives in package tsp; instance files are read by tsp/loader and
// finished runs can be kept in the SQLite store of tsp/history.
//
// Basic usage:
//
//	// Load configuration
//	config, err := tsp.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Load the cities and distances
//	inst, err := loader.Load("path/to/instance.yaml")
//	if err != nil {
//		log.Fatalf("Error loading instance: %v", err)
//	}
//
//	// Evolve and take the best tour of the last generation
//	result, err := tsp.Solve(config, inst)
//	if err != nil {
//		log.Fatalf("Error solving: %v", err)
//	}
//	fmt.Println(strings.Join(result.Route, " -> "), result.Cost)
//
// A fixed Run.Seed in the config reproduces a run exactly, including a run
// resumed from a checkpoint.
package tspga
