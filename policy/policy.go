package policy

// Thresholds are the confidence cut-offs that drive action selection.
// All bounds are inclusive.
type Thresholds struct {
	// AutoGroup is the minimum confidence for merging without review.
	AutoGroup float64 `json:"auto_group" yaml:"auto_group"`

	// SuggestGroup is the minimum confidence for suggesting a merge
	// to a human reviewer.
	SuggestGroup float64 `json:"suggest_group" yaml:"suggest_group"`

	// Review is the minimum confidence for classifying a pair as a
	// partial match rather than no match at all.
	Review float64 `json:"review" yaml:"review"`
}

// DefaultThresholds returns the calibrated production thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		AutoGroup:    0.95,
		SuggestGroup: 0.85,
		Review:       0.70,
	}
}

// SuggestedAction maps a confidence value to a recommended action.
// The mapping is monotone: higher confidence never yields a less
// committal action.
func (t Thresholds) SuggestedAction(confidence float64) Action {
	switch {
	case confidence >= t.AutoGroup:
		return ActionAutoGroup
	case confidence >= t.SuggestGroup:
		return ActionSuggest
	default:
		return ActionKeepSeparate
	}
}

// ClassifyMatch maps a confidence value and the presence of an exact
// identifier match to a MatchType.
func (t Thresholds) ClassifyMatch(confidence float64, hasExactID bool) MatchType {
	switch {
	case hasExactID && confidence >= t.AutoGroup:
		return MatchTypeExactID
	case confidence >= t.SuggestGroup:
		return MatchTypeHighSimilarity
	case confidence >= t.Review:
		return MatchTypePartial
	default:
		return MatchTypeNoMatch
	}
}

// NewMatchResult composes a confidence value into a full MatchResult.
func (t Thresholds) NewMatchResult(confidence float64, hasExactID bool, reason string) MatchResult {
	return MatchResult{
		Confidence:      confidence,
		MatchType:       t.ClassifyMatch(confidence, hasExactID),
		SuggestedAction: t.SuggestedAction(confidence),
		Reason:          reason,
	}
}

// ShouldGroup reports whether the result recommends grouping the
// records, with or without human confirmation.
func ShouldGroup(result MatchResult) bool {
	return result.SuggestedAction == ActionAutoGroup || result.SuggestedAction == ActionSuggest
}

// NeedsReview reports whether the result falls in the ambiguous band
// that a human must confirm before grouping.
func NeedsReview(result MatchResult) bool {
	return result.SuggestedAction == ActionSuggest
}
