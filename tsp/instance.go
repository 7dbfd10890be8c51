package tsp

import (
	"fmt"
	"math"
)

// Instance is an immutable TSP instance: the city labels and the distance
// between every ordered pair. Cities[0] is the fixed start city. Distances
// need not be symmetric.
type Instance struct {
	Name   string
	Cities []string

	dist  [][]float64
	index map[string]int
}

// NewInstance builds an Instance from a label table, dist[from][to].
// Every ordered pair of distinct cities must be present. The diagonal may be
// omitted (it defaults to 0); when given it must be 0.
func NewInstance(cities []string, dist map[string]map[string]float64) (*Instance, error) {
	inst, err := newInstance(cities)
	if err != nil {
		return nil, err
	}
	for i, from := range cities {
		row := dist[from]
		for j, to := range cities {
			d, ok := row[to]
			if !ok {
				if i == j {
					continue
				}
				return nil, fmt.Errorf("%w: missing distance %s -> %s", ErrInvalidInput, from, to)
			}
			if err := checkDistance(from, to, i == j, d); err != nil {
				return nil, err
			}
			inst.dist[i][j] = d
		}
	}
	return inst, nil
}

// NewInstanceFromMatrix builds an Instance from a square matrix indexed like
// cities. The matrix is copied.
func NewInstanceFromMatrix(cities []string, matrix [][]float64) (*Instance, error) {
	inst, err := newInstance(cities)
	if err != nil {
		return nil, err
	}
	if len(matrix) != len(cities) {
		return nil, fmt.Errorf("%w: matrix has %d rows for %d cities", ErrInvalidInput, len(matrix), len(cities))
	}
	for i, row := range matrix {
		if len(row) != len(cities) {
			return nil, fmt.Errorf("%w: matrix row %s has %d columns for %d cities", ErrInvalidInput, cities[i], len(row), len(cities))
		}
		for j, d := range row {
			if err := checkDistance(cities[i], cities[j], i == j, d); err != nil {
				return nil, err
			}
			inst.dist[i][j] = d
		}
	}
	return inst, nil
}

func newInstance(cities []string) (*Instance, error) {
	if len(cities) == 0 {
		return nil, fmt.Errorf("%w: city set is empty", ErrInvalidInput)
	}
	n := len(cities)
	inst := &Instance{
		Cities: append([]string(nil), cities...),
		dist:   make([][]float64, n),
		index:  make(map[string]int, n),
	}
	backing := make([]float64, n*n)
	for i, c := range cities {
		if c == "" {
			return nil, fmt.Errorf("%w: city %d has an empty label", ErrInvalidInput, i)
		}
		if _, dup := inst.index[c]; dup {
			return nil, fmt.Errorf("%w: duplicate city %q", ErrInvalidInput, c)
		}
		inst.index[c] = i
		inst.dist[i] = backing[i*n : (i+1)*n]
	}
	return inst, nil
}

func checkDistance(from, to string, diagonal bool, d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return fmt.Errorf("%w: distance %s -> %s is not finite", ErrInvalidInput, from, to)
	}
	if d < 0 {
		return fmt.Errorf("%w: distance %s -> %s is negative (%v)", ErrInvalidInput, from, to, d)
	}
	if diagonal && d != 0 {
		return fmt.Errorf("%w: self-distance of %s must be 0 (got %v)", ErrInvalidInput, from, d)
	}
	return nil
}

// N returns the number of cities, start included.
func (inst *Instance) N() int { return len(inst.Cities) }

// Start returns the label of the start city.
func (inst *Instance) Start() string { return inst.Cities[0] }

// Distance returns the cost of the edge from -> to, by city index.
func (inst *Instance) Distance(from, to int) float64 {
	return inst.dist[from][to]
}

// Index returns the index of a city label.
func (inst *Instance) Index(city string) (int, bool) {
	i, ok := inst.index[city]
	return i, ok
}

// Labels translates a route of indices into city labels.
func (inst *Instance) Labels(r Route) []string {
	labels := make([]string, len(r))
	for i, c := range r {
		labels[i] = inst.Cities[c]
	}
	return labels
}

// RouteOf translates city labels into a route of indices.
func (inst *Instance) RouteOf(labels []string) (Route, error) {
	r := make(Route, len(labels))
	for i, l := range labels {
		c, ok := inst.index[l]
		if !ok {
			return nil, fmt.Errorf("%w: unknown city %q", ErrInvalidInput, l)
		}
		r[i] = c
	}
	if err := r.Validate(inst.N()); err != nil {
		return nil, err
	}
	return r, nil
}
