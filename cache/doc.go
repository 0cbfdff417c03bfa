// Package cache memoizes match verdicts keyed on the normalized input
// tuple. Every comparator in the module is pure, so a verdict computed
// once for a normalized record pair is valid forever under the same
// calibration; caching is purely an optimization for pipelines that
// re-evaluate the same document pairs repeatedly.
//
// Two stores are provided: Memory for a single process and RedisStore
// for sharing verdicts across a worker fleet. Cache failures are never
// fatal; callers fall back to recomputation.
package cache
