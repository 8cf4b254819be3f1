package salary

import (
	"errors"
	"math"
	"testing"

	"career-intel/internal/domain/profile"
)

func trainSmallModel(t *testing.T) *Model {
	t.Helper()

	// Tiny synthetic corpus: salary grows with both feature axes.
	features := [][]float64{
		{0.1, 0.1, 1},
		{0.2, 0.1, 2},
		{0.4, 0.3, 3},
		{0.5, 0.4, 4},
		{0.7, 0.6, 5},
		{0.8, 0.7, 6},
		{0.9, 0.9, 7},
		{1.0, 0.9, 8},
	}
	labels := []float64{8, 10, 14, 16, 20, 24, 28, 30}

	m, err := Train(features, labels, TrainConfig{Trees: 20, Seed: 7})
	if err != nil {
		t.Fatalf("train failed: %v", err)
	}
	return m
}

func TestPredictRange_NilModelSentinel(t *testing.T) {
	low, high, err := PredictRange(nil, profile.Vector{1, 2, 3}, 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if low != 0 || high != 0 {
		t.Fatalf("expected (0, 0) sentinel, got (%v, %v)", low, high)
	}
}

func TestPredictRange_BandShape(t *testing.T) {
	m := trainSmallModel(t)

	low, high, err := PredictRange(m, profile.Vector{0.5, 0.4}, 4)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if low <= 0 || high <= low {
		t.Fatalf("expected 0 < low < high, got (%v, %v)", low, high)
	}
	ratio := high / low
	if math.Abs(ratio-bandHigh/bandLow) > 0.02 {
		t.Fatalf("expected ratio near %v, got %v", bandHigh/bandLow, ratio)
	}
}

func TestPredictRange_ZeroVector(t *testing.T) {
	m := trainSmallModel(t)

	low, high, err := PredictRange(m, profile.ZeroVector(2), 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !(low < high) {
		t.Fatalf("expected low < high, got (%v, %v)", low, high)
	}
}

func TestPredictRange_DimensionMismatch(t *testing.T) {
	m := trainSmallModel(t)

	_, _, err := PredictRange(m, profile.Vector{1, 2, 3, 4}, 1)
	var dimErr *ErrFeatureDim
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected ErrFeatureDim, got %v", err)
	}
	if dimErr.Got != 5 || dimErr.Want != 3 {
		t.Fatalf("unexpected dims in error: %+v", dimErr)
	}
}

func TestTrain_Validation(t *testing.T) {
	if _, err := Train(nil, nil, TrainConfig{}); err == nil {
		t.Fatalf("expected error on empty training set")
	}
	if _, err := Train([][]float64{{1}}, []float64{1, 2}, TrainConfig{}); err == nil {
		t.Fatalf("expected error on length mismatch")
	}
	if _, err := Train([][]float64{{1, 2}, {1}}, []float64{1, 2}, TrainConfig{}); err == nil {
		t.Fatalf("expected error on ragged rows")
	}
}

func TestTrain_Deterministic(t *testing.T) {
	features := [][]float64{{1, 0}, {2, 1}, {3, 2}, {4, 3}, {5, 4}, {6, 5}}
	labels := []float64{5, 8, 12, 15, 20, 25}

	a, err := Train(features, labels, TrainConfig{Trees: 10, Seed: 3})
	if err != nil {
		t.Fatalf("train failed: %v", err)
	}
	b, err := Train(features, labels, TrainConfig{Trees: 10, Seed: 3})
	if err != nil {
		t.Fatalf("train failed: %v", err)
	}

	probe := []float64{3.5, 2.5}
	if a.Predict(probe) != b.Predict(probe) {
		t.Fatalf("same seed produced different models")
	}
}

func TestPredict_TrendsWithFeatures(t *testing.T) {
	m := trainSmallModel(t)

	lowEnd := m.Predict([]float64{0.1, 0.1, 1})
	highEnd := m.Predict([]float64{1.0, 0.9, 8})
	if lowEnd >= highEnd {
		t.Fatalf("expected prediction to grow with features: %v vs %v", lowEnd, highEnd)
	}
}
