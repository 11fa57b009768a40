package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customersCSV = `CustomerID,Name,Age,Annual_Income,Spending_Score
1,Amy,23,15000,39
2,Ben,31,16000,81
3,Cleo,22,17000,6
4,Dee,35,18000,77
`

func TestLoad_NumericColumnDetection(t *testing.T) {
	ds, err := Load(strings.NewReader(customersCSV))
	require.NoError(t, err)

	assert.Equal(t, 4, ds.Len())
	assert.Equal(t, []string{"CustomerID", "Name", "Age", "Annual_Income", "Spending_Score"}, ds.Columns())
	// Numeric columns keep original column order; Name is excluded.
	assert.Equal(t, []string{"CustomerID", "Age", "Annual_Income", "Spending_Score"}, ds.NumericColumns())
}

func TestLoad_FloatAndIntColumns(t *testing.T) {
	csv := "a,b\n1,2.5\n-3,1e3\n"
	ds, err := Load(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.NumericColumns())
}

func TestLoad_EmptyCellDisqualifiesColumn(t *testing.T) {
	csv := "a,b\n1,2\n,3\n"
	ds, err := Load(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ds.NumericColumns())
}

func TestLoad_NoDataRows(t *testing.T) {
	_, err := Load(strings.NewReader("a,b\n"))
	assert.ErrorIs(t, err, ErrNoRows)

	_, err = Load(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoRows)
}

func TestLoad_MalformedCSV(t *testing.T) {
	// Inconsistent field counts propagate as an error.
	_, err := Load(strings.NewReader("a,b\n1,2\n3\n"))
	assert.Error(t, err)
}

func TestEnsureClusterable(t *testing.T) {
	ds, err := Load(strings.NewReader("name,score\nAmy,3\nBen,5\n"))
	require.NoError(t, err)
	assert.ErrorIs(t, ds.EnsureClusterable(), ErrTooFewNumeric)

	ds, err = Load(strings.NewReader(customersCSV))
	require.NoError(t, err)
	assert.NoError(t, ds.EnsureClusterable())
}

func TestColumn(t *testing.T) {
	ds, err := Load(strings.NewReader(customersCSV))
	require.NoError(t, err)

	age, ok := ds.Column("Age")
	require.True(t, ok)
	assert.Equal(t, []float64{23, 31, 22, 35}, age)

	_, ok = ds.Column("Name")
	assert.False(t, ok)
}

func TestMatrix(t *testing.T) {
	ds, err := Load(strings.NewReader(customersCSV))
	require.NoError(t, err)

	X, err := ds.Matrix("Annual_Income", "Spending_Score")
	require.NoError(t, err)
	require.Len(t, X, 4)
	assert.Equal(t, []float64{15000, 39}, X[0])
	assert.Equal(t, []float64{18000, 77}, X[3])
}

func TestMatrix_Errors(t *testing.T) {
	ds, err := Load(strings.NewReader(customersCSV))
	require.NoError(t, err)

	_, err = ds.Matrix("Age", "Age")
	assert.Error(t, err, "feature pair must be distinct")

	_, err = ds.Matrix("Name", "Age")
	assert.Error(t, err, "non-numeric column")

	_, err = ds.Matrix("Age", "missing")
	assert.Error(t, err, "unknown column")
}
