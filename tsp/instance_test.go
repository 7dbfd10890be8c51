package tsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstance(t *testing.T) {
	inst := fiveCity(t)
	assert.Equal(t, 5, inst.N())
	assert.Equal(t, "A", inst.Start())
	assert.Equal(t, 9.0, inst.Distance(0, 2))

	i, ok := inst.Index("D")
	assert.True(t, ok)
	assert.Equal(t, 3, i)
	_, ok = inst.Index("Z")
	assert.False(t, ok)
}

func TestNewInstanceDiagonalOptional(t *testing.T) {
	inst, err := NewInstance([]string{"x", "y"}, map[string]map[string]float64{
		"x": {"y": 4},
		"y": {"x": 6},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, inst.Distance(1, 1))
	assert.Equal(t, 6.0, inst.Distance(1, 0))
}

func TestNewInstanceInvalid(t *testing.T) {
	tests := map[string]struct {
		cities []string
		dist   map[string]map[string]float64
	}{
		"empty":       {nil, nil},
		"duplicate":   {[]string{"a", "a"}, map[string]map[string]float64{"a": {"a": 0}}},
		"blank":       {[]string{"a", ""}, map[string]map[string]float64{}},
		"missing":     {[]string{"a", "b"}, map[string]map[string]float64{"a": {"b": 1}}},
		"missing row": {[]string{"a", "b"}, map[string]map[string]float64{"b": {"a": 1}}},
		"negative":    {[]string{"a", "b"}, map[string]map[string]float64{"a": {"b": -1}, "b": {"a": 1}}},
		"infinite":    {[]string{"a", "b"}, map[string]map[string]float64{"a": {"b": math.Inf(1)}, "b": {"a": 1}}},
		"nan":         {[]string{"a", "b"}, map[string]map[string]float64{"a": {"b": math.NaN()}, "b": {"a": 1}}},
		"diagonal":    {[]string{"a", "b"}, map[string]map[string]float64{"a": {"a": 1, "b": 1}, "b": {"a": 1}}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewInstance(tc.cities, tc.dist)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestNewInstanceFromMatrix(t *testing.T) {
	m := [][]float64{{0, 1}, {2, 0}}
	inst, err := NewInstanceFromMatrix([]string{"p", "q"}, m)
	require.NoError(t, err)
	m[0][1] = 50
	assert.Equal(t, 1.0, inst.Distance(0, 1), "matrix must be copied")

	_, err = NewInstanceFromMatrix([]string{"p", "q"}, [][]float64{{0, 1}})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = NewInstanceFromMatrix([]string{"p", "q"}, [][]float64{{0, 1}, {2}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRouteOfAndLabels(t *testing.T) {
	inst := fiveCity(t)
	labels := []string{"A", "C", "E", "D", "B", "A"}
	r, err := inst.RouteOf(labels)
	require.NoError(t, err)
	assert.Equal(t, Route{0, 2, 4, 3, 1, 0}, r)
	assert.Equal(t, labels, inst.Labels(r))

	_, err = inst.RouteOf([]string{"A", "C", "Q", "D", "B", "A"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = inst.RouteOf([]string{"A", "C", "C", "D", "B", "A"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRouteValidate(t *testing.T) {
	assert.NoError(t, Route{0, 2, 1, 3, 0}.Validate(4))
	assert.NoError(t, Route{0, 0}.Validate(1))

	for _, r := range []Route{
		{0, 2, 1, 0},    // too short
		{1, 2, 0, 3, 0}, // wrong start
		{0, 2, 1, 3, 2}, // wrong end
		{0, 2, 2, 3, 0}, // duplicate
		{0, 2, 4, 3, 0}, // out of range
		{0, 0, 1, 3, 0}, // start inside
	} {
		assert.ErrorIs(t, r.Validate(4), ErrInvalidInput, "%v", r)
	}
}
