package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardScaler_FitTransform(t *testing.T) {
	X := [][]float64{{1, 10}, {2, 20}, {3, 30}, {4, 40}}

	s := NewStandardScaler()
	scaled, err := s.FitTransform(X)
	require.NoError(t, err)
	require.Len(t, scaled, 4)

	// Each column ends up with zero mean and unit population variance.
	for j := 0; j < 2; j++ {
		col := make([]float64, len(scaled))
		for i := range scaled {
			col[i] = scaled[i][j]
		}
		assert.InDelta(t, 0.0, Mean(col), 1e-12)
		assert.InDelta(t, 1.0, Variance(col), 1e-12)
	}

	// The input is not modified.
	assert.Equal(t, [][]float64{{1, 10}, {2, 20}, {3, 30}, {4, 40}}, X)
}

func TestStandardScaler_PopulationStd(t *testing.T) {
	X := [][]float64{{2}, {4}, {4}, {4}, {5}, {5}, {7}, {9}}

	s := NewStandardScaler()
	require.NoError(t, s.Fit(X))

	assert.InDelta(t, 5.0, s.Mean[0], 1e-12)
	assert.InDelta(t, 2.0, s.Std[0], 1e-12) // population, not sample
}

func TestStandardScaler_ConstantColumn(t *testing.T) {
	X := [][]float64{{7, 1}, {7, 2}, {7, 3}}

	s := NewStandardScaler()
	scaled, err := s.FitTransform(X)
	require.NoError(t, err)

	for i := range scaled {
		assert.Equal(t, 0.0, scaled[i][0])
	}
}

func TestStandardScaler_InverseRoundTrip(t *testing.T) {
	X := [][]float64{{10, 1}, {12, 1}, {11, 2}, {90, 80}, {95, 82}, {88, 79}}

	s := NewStandardScaler()
	scaled, err := s.FitTransform(X)
	require.NoError(t, err)

	back := s.InverseTransform(scaled)
	for i := range X {
		for j := range X[i] {
			assert.InDelta(t, X[i][j], back[i][j], 1e-9)
		}
	}
}

func TestStandardScaler_EmptyInput(t *testing.T) {
	s := NewStandardScaler()
	assert.Error(t, s.Fit(nil))
}

func TestStandardScaler_TransformBeforeFit(t *testing.T) {
	s := NewStandardScaler()
	X := [][]float64{{1, 2}}
	assert.Equal(t, X, s.Transform(X))
	assert.Equal(t, X, s.InverseTransform(X))
}
