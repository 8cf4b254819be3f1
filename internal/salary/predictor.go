package salary

import (
	"fmt"
	"math"

	"career-intel/internal/domain/profile"
)

// Display band around the point estimate. A fixed spread standing in for
// uncertainty, not a statistical confidence interval.
const (
	bandLow  = 0.85
	bandHigh = 1.15
)

// ErrFeatureDim reports a width mismatch between the trained model and the
// runtime embedding. Detected before the model is invoked so a stale
// artifact can never silently produce garbage predictions.
type ErrFeatureDim struct {
	Got  int
	Want int
}

func (e *ErrFeatureDim) Error() string {
	return fmt.Sprintf("feature vector has %d dimensions, model expects %d", e.Got, e.Want)
}

// Features builds the model input: the profile vector with the experience
// years appended as a single trailing scalar. The ordering (embedding
// first, experience last) is shared between training and serving.
func Features(vec profile.Vector, experienceYears int) []float64 {
	out := make([]float64, len(vec)+1)
	copy(out, vec)
	out[len(vec)] = float64(experienceYears)
	return out
}

// PredictRange turns a point salary estimate into the displayed range,
// rounded to one decimal. A nil model yields the (0, 0) sentinel meaning
// "prediction unavailable" rather than an error.
func PredictRange(m *Model, vec profile.Vector, experienceYears int) (low, high float64, err error) {
	if m == nil {
		return 0, 0, nil
	}

	features := Features(vec, experienceYears)
	if len(features) != m.NumFeatures {
		return 0, 0, &ErrFeatureDim{Got: len(features), Want: m.NumFeatures}
	}

	p := m.Predict(features)
	return round1(p * bandLow), round1(p * bandHigh), nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
