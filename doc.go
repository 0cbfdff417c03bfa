// Package entitymatch decides whether two pieces of extracted personal
// data (names and government ID numbers) plausibly refer to the same
// real-world person, despite OCR noise, transliteration spelling
// variance, and truncated identifiers.
//
// # Architecture
//
// The module is a set of pure functions layered under one facade:
//
//   - names: name normalization and a curated transliteration-variant
//     dictionary producing the name-similarity signal
//   - ident: identifier normalization, tiered comparison, and format
//     classification (Emirates ID, passport)
//   - policy: thresholds, signal combination, verdict classification,
//     and optional CEL guardrail rules
//   - cache: optional verdict memoization (in-memory or Redis)
//
// Matcher ties the signals together: the caller supplies two candidate
// records, the comparators score them independently, and the policy
// layer combines the scores into one MatchResult with a suggested
// action (auto_group, suggest, keep_separate). The caller decides what
// to do with the verdict; this module persists nothing and calls no
// external service on its own.
//
// # Getting Started
//
//	matcher, err := entitymatch.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result := matcher.EvaluatePair(ctx,
//		entitymatch.Record{Name: "Mohamed Al-Ali", IDNumber: "784-1990-1234567-8"},
//		entitymatch.Record{Name: "Mohammed Aly", IDNumber: "784199012345678"},
//	)
//	if policy.ShouldGroup(result) {
//		// merge or queue for review depending on result.SuggestedAction
//	}
//
// Calibration (thresholds, signal weights, extra name families,
// guardrail rules) loads from a YAML file via the config package and
// applies with WithConfig. Everything is safe for concurrent use;
// EvaluateBatch evaluates many pairs in parallel.
package entitymatch
