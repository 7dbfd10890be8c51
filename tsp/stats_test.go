package tsp

import (
	"bytes"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatFunctions(t *testing.T) {
	values := []float64{4, 8, 6, 2}
	assert.Equal(t, 5.0, Mean(values))
	assert.InDelta(t, math.Sqrt(20.0/3.0), Stdev(values), 1e-12)
	assert.Equal(t, 2.0, MinFloat(values))
	assert.Equal(t, 8.0, MaxFloat(values))
	assert.Equal(t, 5.0, Median(values))
	assert.Equal(t, []float64{4, 8, 6, 2}, values, "Median must not reorder its input")
	assert.Equal(t, 6.0, Median([]float64{9, 6, 1}))

	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Stdev([]float64{3}))
	assert.True(t, math.IsInf(MinFloat(nil), 1))
	assert.True(t, math.IsInf(MaxFloat(nil), -1))
	assert.True(t, math.IsNaN(Median(nil)))
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats(3, []float64{10, 30, 20})
	assert.Equal(t, GenerationStats{Generation: 3, Best: 10, Worst: 30, Mean: 20, Median: 20, Stdev: 10}, s)

	s = ComputeStats(4, []float64{7})
	assert.Equal(t, GenerationStats{Generation: 4, Best: 7, Worst: 7, Mean: 7, Median: 7}, s)

	costs := []float64{4, 8, 6, 2}
	s = ComputeStats(5, costs)
	assert.Equal(t, MinFloat(costs), s.Best)
	assert.Equal(t, MaxFloat(costs), s.Worst)
	assert.Equal(t, Mean(costs), s.Mean)
	assert.Equal(t, Stdev(costs), s.Stdev)

	empty := ComputeStats(0, nil)
	assert.True(t, math.IsInf(empty.Best, 1))
	assert.True(t, math.IsInf(empty.Worst, -1))
	assert.True(t, math.IsNaN(empty.Median))
}

func TestStatisticsReporter(t *testing.T) {
	r := &StatisticsReporter{}
	set := ReporterSet{r}
	set.StartGeneration(1)
	set.EndGeneration(1, GenerationStats{Generation: 1, Best: 30})
	set.EndGeneration(2, GenerationStats{Generation: 2, Best: 25})
	set.EndGeneration(3, GenerationStats{Generation: 3, Best: 27})
	set.FoundSolution(3, []string{"a", "a"}, 27)

	assert.Equal(t, []float64{30, 25, 27}, r.BestCosts())
	assert.Equal(t, 25.0, r.BestEver())
}

func TestStdOutReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewStdOutReporter(log.New(&buf, "", 0), 2)

	r.StartGeneration(1)
	r.EndGeneration(1, GenerationStats{Best: 1})
	assert.Empty(t, buf.String())

	r.StartGeneration(2)
	r.EndGeneration(2, GenerationStats{Best: 12.5, Mean: 20})
	assert.Contains(t, buf.String(), "****** Generation 2 ******")
	assert.Contains(t, buf.String(), "best 12.5000")

	r.FoundSolution(3, []string{"A", "B", "A"}, 4)
	assert.Contains(t, buf.String(), "A -> B -> A (cost 4.0000)")
}
