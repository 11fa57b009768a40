package model

import (
	"errors"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
)

// DefaultMaxIter caps the Lloyd iteration loop when assignments keep moving.
const DefaultMaxIter = 300

// KMeans is an unsupervised learning model that partitions data points into
// K clusters. Runs are deterministic for a given seed, K and input: centroid
// initialization draws from a private rand.Rand and the parallel assignment
// step touches disjoint row ranges.
type KMeans struct {
	K         int
	MaxIter   int
	Seed      int64
	Centroids [][]float64
	Inertia   float64 // Sum of squared distances to nearest centroid
}

// NewKMeans creates a KMeans model with the given cluster count and seed.
func NewKMeans(k int, seed int64) *KMeans {
	return &KMeans{
		K:       k,
		MaxIter: DefaultMaxIter,
		Seed:    seed,
	}
}

// Fit finds K centroids by iteratively assigning points to their nearest
// centroid and recomputing each centroid as the mean of its assigned points,
// until assignments stop changing or MaxIter is reached.
func (m *KMeans) Fit(X [][]float64) error {
	_, err := m.fit(X)
	return err
}

// FitPredict fits the model and returns the final cluster assignment for
// each row, one id in [0, K) per row.
func (m *KMeans) FitPredict(X [][]float64) ([]int, error) {
	return m.fit(X)
}

func (m *KMeans) fit(X [][]float64) ([]int, error) {
	if len(X) == 0 {
		return nil, errors.New("input data cannot be empty")
	}
	if m.K < 1 {
		return nil, errors.New("K must be at least 1")
	}

	n, p := len(X), len(X[0])
	if n < m.K {
		return nil, errors.New("number of data points is less than K")
	}
	if m.MaxIter <= 0 {
		m.MaxIter = DefaultMaxIter
	}

	rng := rand.New(rand.NewSource(m.Seed))
	m.initCenters(X, rng)

	assign := make([]int, n)
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)

	for it := 0; it < m.MaxIter; it++ {
		var changed atomic.Bool
		m.Inertia = 0.0

		// Assignment step: each point to its nearest centroid, rows split
		// into disjoint chunks across workers.
		rowsPerWorker := (n + workers - 1) / workers
		for w := 0; w < workers; w++ {
			start := w * rowsPerWorker
			end := start + rowsPerWorker
			if end > n {
				end = n
			}
			if start >= end {
				continue
			}

			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				for i := start; i < end; i++ {
					best, bestdSquared := -1, math.MaxFloat64
					for k := 0; k < m.K; k++ {
						dSquared := euclidSquared(X[i], m.Centroids[k])
						if dSquared < bestdSquared {
							bestdSquared = dSquared
							best = k
						}
					}
					if assign[i] != best {
						changed.Store(true)
					}
					assign[i] = best
				}
			}(start, end)
		}
		wg.Wait()

		// Update step: recompute centroids as the mean of assigned points.
		sums := make([][]float64, m.K)
		counts := make([]int, m.K)
		for k := 0; k < m.K; k++ {
			sums[k] = make([]float64, p)
		}
		for i := 0; i < n; i++ {
			k := assign[i]
			counts[k]++
			for j := 0; j < p; j++ {
				sums[k][j] += X[i][j]
			}
			m.Inertia += euclidSquared(X[i], m.Centroids[k])
		}

		for k := 0; k < m.K; k++ {
			if counts[k] == 0 {
				continue // empty cluster keeps its centroid
			}
			for j := 0; j < p; j++ {
				m.Centroids[k][j] = sums[k][j] / float64(counts[k])
			}
		}

		if !changed.Load() {
			break
		}
	}
	return assign, nil
}

// Predict assigns each data point to its nearest fitted centroid.
func (m *KMeans) Predict(X [][]float64) ([]int, error) {
	if len(X) == 0 {
		return nil, errors.New("input data for prediction cannot be empty")
	}
	if len(m.Centroids) == 0 {
		return nil, errors.New("model has not been fitted")
	}

	n := len(X)
	if len(X[0]) != len(m.Centroids[0]) {
		return nil, errors.New("feature count mismatch between input data and model centroids")
	}

	assignments := make([]int, n)
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				best, bestdSquared := -1, math.MaxFloat64
				for k := 0; k < m.K; k++ {
					dSquared := euclidSquared(X[i], m.Centroids[k])
					if dSquared < bestdSquared {
						bestdSquared = dSquared
						best = k
					}
				}
				assignments[i] = best
			}
		}(start, end)
	}
	wg.Wait()

	return assignments, nil
}

// initCenters seeds the centroids with the k-means++ strategy: the first
// center is a random point, each further center is drawn with probability
// proportional to its squared distance from the nearest existing center.
func (m *KMeans) initCenters(X [][]float64, rng *rand.Rand) {
	n, d := len(X), len(X[0])
	m.Centroids = make([][]float64, m.K)

	idx := rng.Intn(n)
	m.Centroids[0] = append([]float64{}, X[idx]...)

	for k := 1; k < m.K; k++ {
		distSq := make([]float64, n)
		total := 0.0
		for i, x := range X {
			minDist := math.MaxFloat64
			for _, c := range m.Centroids[:k] {
				d2 := 0.0
				for j := 0; j < d; j++ {
					dx := x[j] - c[j]
					d2 += dx * dx
				}
				if d2 < minDist {
					minDist = d2
				}
			}
			distSq[i] = minDist
			total += minDist
		}

		if total == 0 {
			// All remaining points coincide with existing centers.
			m.Centroids[k] = append([]float64{}, X[rng.Intn(n)]...)
			continue
		}

		r := rng.Float64() * total
		cumulative := 0.0
		for i, d2 := range distSq {
			cumulative += d2
			if cumulative >= r {
				m.Centroids[k] = append([]float64{}, X[i]...)
				break
			}
		}
		if m.Centroids[k] == nil {
			m.Centroids[k] = append([]float64{}, X[n-1]...)
		}
	}
}

func euclidSquared(a, b []float64) float64 {
	d := 0.0
	for i := range a {
		dx := a[i] - b[i]
		d += dx * dx
	}
	return d
}
