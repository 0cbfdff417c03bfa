package ident

import (
	"strings"

	"github.com/veridoc/entitymatch/policy"
)

const (
	// containmentMinLen is the minimum normalized length for the
	// substring-containment tier. Shorter fragments are too easy to
	// match by coincidence.
	containmentMinLen = 6

	// prefixLen covers the Emirates ID structure: the 3-digit country
	// code plus the 4-digit birth year occupy the first 7 characters.
	prefixLen = 7

	// containmentConfidence scores a substring match, typically an ID
	// truncated by OCR.
	containmentConfidence = 0.85

	// prefixConfidence scores a shared 7-character prefix; plausible
	// but weak enough to demand manual verification.
	prefixConfidence = 0.7
)

// Compare produces a confidence-scored verdict for two raw
// identifiers. Tiers are evaluated in strict order and the first match
// wins; once a tier matches, no looser tier is consulted:
//
//  1. either side empty after normalization: no match, confidence 0
//  2. exact normalized equality: confidence 1.0
//  3. both length >= 6 and one contains the other: confidence 0.85
//  4. both length >= 7 with identical first 7 characters: confidence 0.7
//  5. otherwise: no match, confidence 0
//
// Containment does not verify which end of the longer ID was
// truncated, so unrelated IDs sharing a 6+ character substring can
// score 0.85. Guardrail rules are the calibration mechanism for
// deployments where that matters.
//
// Compare is symmetric: Compare(a, b).Confidence equals
// Compare(b, a).Confidence for all inputs.
func Compare(id1, id2 string) policy.Signal {
	n1 := Normalize(id1)
	n2 := Normalize(id2)

	switch {
	case n1 == "" || n2 == "":
		return policy.Signal{Match: false, Confidence: 0, Reason: "One or both IDs are empty"}

	case n1 == n2:
		return policy.Signal{Match: true, Confidence: 1.0, Reason: "Exact ID match"}

	case len(n1) >= containmentMinLen && len(n2) >= containmentMinLen &&
		(strings.Contains(n1, n2) || strings.Contains(n2, n1)):
		return policy.Signal{Match: true, Confidence: containmentConfidence, Reason: "Partial ID match - likely OCR truncation"}

	case len(n1) >= prefixLen && len(n2) >= prefixLen && n1[:prefixLen] == n2[:prefixLen]:
		return policy.Signal{Match: true, Confidence: prefixConfidence, Reason: "ID prefix match - verify manually"}

	default:
		return policy.Signal{Match: false, Confidence: 0, Reason: "No ID match"}
	}
}
