package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khushibung05/KMeans/pkg/segment"
)

func testResult() *segment.Result {
	X := [][]float64{{10, 1}, {12, 1}, {11, 2}, {90, 80}, {95, 82}, {88, 79}}
	assignments := []int{0, 0, 0, 1, 1, 1}
	summaries := segment.Summarize(X, assignments)
	segment.Interpret(summaries)
	return &segment.Result{
		Feature1:    "Annual_Income",
		Feature2:    "Spending_Score",
		Points:      X,
		Assignments: assignments,
		Centers:     [][]float64{{11, 4.0 / 3.0}, {91, 80.33}},
		Summaries:   summaries,
	}
}

func TestSaveScatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clusters.png")
	require.NoError(t, SaveScatter(testResult(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveScatter_BadPath(t *testing.T) {
	err := SaveScatter(testResult(), filepath.Join(t.TempDir(), "missing", "clusters.png"))
	assert.Error(t, err)
}
