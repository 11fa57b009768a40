package model

// Clusterer is for unsupervised clustering.
type Clusterer interface {
	Fit(X [][]float64) error
	Predict(X [][]float64) ([]int, error)
}

// Transformer is for preprocessing steps (fit once, transform both ways).
type Transformer interface {
	Fit(X [][]float64) error
	Transform(X [][]float64) [][]float64
	InverseTransform(X [][]float64) [][]float64
}
