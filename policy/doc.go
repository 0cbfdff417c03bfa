// Package policy combines comparator signals into a single match
// verdict and maps confidence values to recommended actions.
//
// The policy layer is deliberately thin: a set of inclusive confidence
// thresholds (Thresholds), two combination strategies (MaxConfidence
// for a dominant signal, CombineConfidences for a weighted blend), and
// a classification of the result into a MatchType and an Action.
//
// # Actions
//
// Confidence maps to exactly one of three recommendations:
//   - auto_group: merge without human review (confidence >= 0.95)
//   - suggest: surface to a human reviewer (confidence >= 0.85)
//   - keep_separate: leave the records distinct
//
// The mapping is monotone in confidence; a higher confidence can never
// produce a less committal action.
//
// # Guardrails
//
// RuleSet adds an optional calibration layer: CEL conditions over the
// full signal set that may tighten a verdict toward review or
// separation, but never escalate it. Operators use guardrails to
// compensate for known weak spots, such as substring-containment ID
// matches backed by no name evidence, without touching the core tiers.
package policy
