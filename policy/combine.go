package policy

// WeightedSignal pairs a signal confidence with its contribution weight.
type WeightedSignal struct {
	// Confidence is the signal confidence in [0.0, 1.0].
	Confidence float64 `json:"confidence"`

	// Weight is the relative contribution of this signal. Signals with
	// zero weight are ignored; weights need not sum to 1.0.
	Weight float64 `json:"weight"`
}

// MaxConfidence returns the larger of two signal confidences.
// Use it when any single strong signal, such as an exact ID match,
// should dominate a weaker competing signal.
func MaxConfidence(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// CombineConfidences computes the weighted arithmetic mean of the given
// signals. Returns 0 if the slice is empty or every weight is zero.
// Use it when several weak signals should jointly raise confidence
// rather than one signal dominating.
//
// The result is always bounded by the minimum and maximum confidences
// of the weighted inputs.
func CombineConfidences(signals []WeightedSignal) float64 {
	if len(signals) == 0 {
		return 0
	}

	var weightedSum, weightSum float64
	for _, s := range signals {
		weightedSum += s.Confidence * s.Weight
		weightSum += s.Weight
	}

	if weightSum == 0 {
		return 0
	}
	return weightedSum / weightSum
}
