package entitymatch

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/veridoc/entitymatch/cache"
	"github.com/veridoc/entitymatch/config"
	"github.com/veridoc/entitymatch/names"
	"github.com/veridoc/entitymatch/policy"
)

// Option configures a Matcher.
type Option func(*matcherConfig)

// matcherConfig holds configuration for a Matcher instance.
type matcherConfig struct {
	thresholds  policy.Thresholds
	weights     config.Weights
	nameScores  names.Scores
	families    map[string][]string
	rules       []policy.Rule
	store       cache.Store
	logger      *slog.Logger
	tracer      trace.Tracer
	meter       metric.Meter
	concurrency int
}

// WithConfig applies a loaded calibration file. Sections absent from
// the file keep their defaults. Later options override file values.
func WithConfig(cfg *config.Config) Option {
	return func(c *matcherConfig) {
		if cfg == nil {
			return
		}
		if cfg.Thresholds != nil {
			c.thresholds = *cfg.Thresholds
		}
		if cfg.Weights != nil {
			c.weights = *cfg.Weights
		}
		if cfg.NameScores != nil {
			c.nameScores = *cfg.NameScores
		}
		if len(cfg.Families) > 0 {
			c.families = cfg.Families
		}
		if len(cfg.Rules) > 0 {
			c.rules = cfg.Rules
		}
	}
}

// WithThresholds overrides the confidence thresholds.
func WithThresholds(t policy.Thresholds) Option {
	return func(c *matcherConfig) {
		c.thresholds = t
	}
}

// WithWeights overrides the name/ID signal weights.
func WithWeights(w config.Weights) Option {
	return func(c *matcherConfig) {
		c.weights = w
	}
}

// WithFamilies merges extra transliteration families over the built-in
// dictionary.
func WithFamilies(families map[string][]string) Option {
	return func(c *matcherConfig) {
		c.families = families
	}
}

// WithRules sets the guardrail rules. They are compiled during New;
// a rule that fails to compile makes New return ErrInvalidRule.
func WithRules(rules []policy.Rule) Option {
	return func(c *matcherConfig) {
		c.rules = rules
	}
}

// WithCache sets a verdict cache. Without one, every evaluation is
// computed from scratch, which is cheap enough for most pipelines.
func WithCache(store cache.Store) Option {
	return func(c *matcherConfig) {
		c.store = store
	}
}

// WithLogger sets a custom logger. If not provided, logging is
// disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *matcherConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for batch evaluation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *matcherConfig) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter; evaluation count, confidence,
// and duration instruments are created from it during New.
func WithMeter(meter metric.Meter) Option {
	return func(c *matcherConfig) {
		c.meter = meter
	}
}

// WithConcurrency sets the number of worker goroutines used by
// EvaluateBatch. Values below 1 fall back to the default (4).
func WithConcurrency(n int) Option {
	return func(c *matcherConfig) {
		c.concurrency = n
	}
}
