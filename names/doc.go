// Package names canonicalizes extracted person names and recognizes
// known transliteration spelling variants.
//
// Normalize turns raw OCR output into a comparable lowercase ASCII
// form. Resolver answers whether two names are related through a
// curated dictionary of Arabic-origin name families ("mohamed" /
// "mohammed" / "muhammad", ...) and produces the name-similarity
// signal consumed by the match policy.
//
// The dictionary is fixed at construction time; there are no phonetic
// heuristics. Unknown names never match through this package, which
// keeps every name-based grouping decision explainable by a dictionary
// entry.
package names
