// Package segment runs the customer segmentation pipeline: scale a two
// feature matrix, cluster it with K-Means, then summarize and interpret
// each cluster against the grand mean of the cluster means.
package segment

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/Khushibung05/KMeans/pkg/dataset"
	"github.com/Khushibung05/KMeans/pkg/model"
	"github.com/Khushibung05/KMeans/pkg/stats"
)

// Fixed interpretation labels attached to each cluster.
const (
	LabelHighSpenders = "High-spending customers across multiple categories"
	LabelBudget       = "Budget-conscious customers with low annual spend"
	LabelModerate     = "Moderate spenders with selective purchasing behavior"
)

// Config carries the clustering controls for one run.
type Config struct {
	K       int
	Seed    int64
	MaxIter int
}

// ClusterSummary describes one populated cluster: its size and the mean of
// both features in original, unscaled units.
type ClusterSummary struct {
	Cluster     int
	Count       int
	AvgFeature1 float64
	AvgFeature2 float64
	Label       string
}

// Result holds everything one run produces. A new Result replaces the prior
// one wholesale; nothing is persisted between runs.
type Result struct {
	RunID         string
	Feature1      string
	Feature2      string
	Points        [][]float64 // N×2 matrix in original units
	Assignments   []int
	Centers       [][]float64 // centroids mapped back to original units
	ScaledCenters [][]float64 // centroids in standardized space
	Summaries     []ClusterSummary
	Inertia       float64
}

// Run recomputes the full pipeline from the dataset: extract the feature
// matrix, standardize it, cluster, then summarize and label each cluster.
func Run(ds *dataset.Dataset, feature1, feature2 string, cfg Config) (*Result, error) {
	if err := ds.EnsureClusterable(); err != nil {
		return nil, err
	}
	X, err := ds.Matrix(feature1, feature2)
	if err != nil {
		return nil, err
	}
	if cfg.K > len(X) {
		return nil, fmt.Errorf("cannot form %d clusters from %d rows", cfg.K, len(X))
	}

	scaler := stats.NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		return nil, err
	}

	km := model.NewKMeans(cfg.K, cfg.Seed)
	if cfg.MaxIter > 0 {
		km.MaxIter = cfg.MaxIter
	}
	assignments, err := km.FitPredict(scaled)
	if err != nil {
		return nil, err
	}

	summaries := Summarize(X, assignments)
	Interpret(summaries)

	return &Result{
		RunID:         uuid.NewString(),
		Feature1:      feature1,
		Feature2:      feature2,
		Points:        X,
		Assignments:   assignments,
		Centers:       scaler.InverseTransform(km.Centroids),
		ScaledCenters: km.Centroids,
		Summaries:     summaries,
		Inertia:       km.Inertia,
	}, nil
}

// Summarize groups rows by cluster id and computes, per populated cluster,
// the row count and the mean of each feature in original units. Clusters
// that received no rows produce no summary row. Results are ordered by
// ascending cluster id.
func Summarize(X [][]float64, assignments []int) []ClusterSummary {
	counts := make(map[int]int)
	sums1 := make(map[int]float64)
	sums2 := make(map[int]float64)
	for i, c := range assignments {
		counts[c]++
		sums1[c] += X[i][0]
		sums2[c] += X[i][1]
	}

	ids := make([]int, 0, len(counts))
	for c := range counts {
		ids = append(ids, c)
	}
	sort.Ints(ids)

	summaries := make([]ClusterSummary, 0, len(ids))
	for _, c := range ids {
		n := counts[c]
		summaries = append(summaries, ClusterSummary{
			Cluster:     c,
			Count:       n,
			AvgFeature1: sums1[c] / float64(n),
			AvgFeature2: sums2[c] / float64(n),
		})
	}
	return summaries
}

// Interpret labels each cluster by comparing its feature means against the
// grand mean of the cluster means (mean of means, not a row-weighted
// average). Strictly above on both features reads as high spenders,
// strictly below on both as budget-conscious, and every mixed or tied case
// as moderate.
func Interpret(summaries []ClusterSummary) {
	if len(summaries) == 0 {
		return
	}
	grand1, grand2 := GrandMeans(summaries)
	for i := range summaries {
		s := &summaries[i]
		switch {
		case s.AvgFeature1 > grand1 && s.AvgFeature2 > grand2:
			s.Label = LabelHighSpenders
		case s.AvgFeature1 < grand1 && s.AvgFeature2 < grand2:
			s.Label = LabelBudget
		default:
			s.Label = LabelModerate
		}
	}
}

// GrandMeans returns the unweighted mean of the per-cluster means for each
// feature.
func GrandMeans(summaries []ClusterSummary) (float64, float64) {
	m1 := make([]float64, len(summaries))
	m2 := make([]float64, len(summaries))
	for i, s := range summaries {
		m1[i] = s.AvgFeature1
		m2[i] = s.AvgFeature2
	}
	return stats.Mean(m1), stats.Mean(m2)
}
