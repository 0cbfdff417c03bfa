package entitymatch

import "errors"

// Sentinel errors for matcher construction. These errors can be used
// with errors.Is() for error checking. Evaluation itself never fails:
// malformed records degrade to zero-confidence verdicts, not errors.
var (
	// ErrInvalidConfig indicates the provided calibration is invalid
	// or incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidRule indicates a guardrail rule failed to compile.
	ErrInvalidRule = errors.New("invalid guardrail rule")
)
