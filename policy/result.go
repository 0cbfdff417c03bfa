package policy

import "fmt"

// MatchType classifies the strength of evidence behind a match verdict.
type MatchType string

const (
	// MatchTypeExactID indicates the records share an identical government ID.
	// This is the strongest possible evidence of identity.
	MatchTypeExactID MatchType = "exact_id"

	// MatchTypeHighSimilarity indicates very strong combined evidence
	// without an exact identifier match.
	MatchTypeHighSimilarity MatchType = "high_similarity"

	// MatchTypePartial indicates meaningful but inconclusive evidence,
	// such as a truncated ID or a transliteration-variant name.
	MatchTypePartial MatchType = "partial"

	// MatchTypeNoMatch indicates no useful evidence that the records
	// refer to the same person.
	MatchTypeNoMatch MatchType = "no_match"
)

// IsValid returns true if the match type is valid.
func (m MatchType) IsValid() bool {
	switch m {
	case MatchTypeExactID, MatchTypeHighSimilarity, MatchTypePartial, MatchTypeNoMatch:
		return true
	default:
		return false
	}
}

// String returns the string representation of the match type.
func (m MatchType) String() string {
	return string(m)
}

// ParseMatchType parses a string into a MatchType value.
// Returns an error if the string is not a valid match type.
func ParseMatchType(s string) (MatchType, error) {
	mt := MatchType(s)
	if !mt.IsValid() {
		return "", fmt.Errorf("invalid match type: %s", s)
	}
	return mt, nil
}

// Action is the policy recommendation handed to the aggregation pipeline.
type Action string

const (
	// ActionAutoGroup recommends merging the records without human review.
	ActionAutoGroup Action = "auto_group"

	// ActionSuggest recommends surfacing the pair to a human reviewer.
	ActionSuggest Action = "suggest"

	// ActionKeepSeparate recommends leaving the records distinct.
	ActionKeepSeparate Action = "keep_separate"
)

// actionCommitment ranks actions by how committal they are.
// Higher rank means the policy is more willing to merge.
var actionCommitment = map[Action]int{
	ActionAutoGroup:    2,
	ActionSuggest:      1,
	ActionKeepSeparate: 0,
}

// IsValid returns true if the action is valid.
func (a Action) IsValid() bool {
	switch a {
	case ActionAutoGroup, ActionSuggest, ActionKeepSeparate:
		return true
	default:
		return false
	}
}

// Commitment returns the commitment rank of the action.
// auto_group > suggest > keep_separate. Returns 0 for invalid actions.
func (a Action) Commitment() int {
	return actionCommitment[a]
}

// String returns the string representation of the action.
func (a Action) String() string {
	return string(a)
}

// ParseAction parses a string into an Action value.
// Returns an error if the string is not a valid action.
func ParseAction(s string) (Action, error) {
	action := Action(s)
	if !action.IsValid() {
		return "", fmt.Errorf("invalid action: %s", s)
	}
	return action, nil
}

// Signal is the output of a single comparator (name or ID).
// Signals are produced fresh per comparison and never mutated.
type Signal struct {
	// Match reports whether the comparator considers the inputs related.
	Match bool `json:"match"`

	// Confidence is the comparator's estimate in [0.0, 1.0].
	Confidence float64 `json:"confidence"`

	// Reason is a human-readable explanation of the verdict.
	Reason string `json:"reason"`
}

// MatchResult is the combined verdict for one record pair.
// It is immutable once created; build it with NewMatchResult.
type MatchResult struct {
	// Confidence is the combined estimate in [0.0, 1.0] that the two
	// records refer to the same person.
	Confidence float64 `json:"confidence"`

	// MatchType classifies the evidence behind the confidence value.
	MatchType MatchType `json:"match_type"`

	// SuggestedAction is the recommendation derived from the confidence.
	SuggestedAction Action `json:"suggested_action"`

	// Reason explains the verdict for the review UI. May be empty.
	Reason string `json:"reason,omitempty"`
}
