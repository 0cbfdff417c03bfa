// Package ident canonicalizes and compares extracted government
// identifiers (Emirates ID, passport, license numbers).
//
// Compare implements a precision-first tiered policy: cheap,
// high-certainty checks (exact equality) are tried before looser ones
// (containment, shared prefix), and the first matching tier decides
// the verdict. The classifier functions detect Emirates ID and
// passport formats and derive the birth year embedded in an Emirates
// ID.
//
// Everything in this package is a pure, total function; malformed
// input degrades to an empty normalized form and a zero-confidence
// verdict rather than an error.
package ident
