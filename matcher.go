package entitymatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/veridoc/entitymatch/cache"
	"github.com/veridoc/entitymatch/config"
	"github.com/veridoc/entitymatch/ident"
	"github.com/veridoc/entitymatch/names"
	"github.com/veridoc/entitymatch/policy"
)

// Record is one extracted candidate: a person name plus an optional
// government identifier, both as raw OCR output.
type Record struct {
	// Name is the extracted person name.
	Name string `json:"name"`

	// IDNumber is the extracted identifier (Emirates ID, passport,
	// license). May be empty when the document carried none.
	IDNumber string `json:"id_number,omitempty"`
}

// Matcher evaluates whether two records plausibly refer to the same
// person. Build it once with New and share it freely; it is immutable
// and safe for concurrent use.
type Matcher struct {
	thresholds  policy.Thresholds
	weights     config.Weights
	resolver    *names.Resolver
	rules       *policy.RuleSet
	store       cache.Store
	logger      *slog.Logger
	tracer      trace.Tracer
	metrics     *matcherMetrics
	concurrency int
}

// New creates a Matcher from the given options. Defaults: production
// thresholds, equal signal weights, the built-in transliteration
// dictionary, no guardrails, no cache, no observability.
func New(opts ...Option) (*Matcher, error) {
	cfg := matcherConfig{
		thresholds:  policy.DefaultThresholds(),
		weights:     config.DefaultWeights(),
		nameScores:  names.DefaultScores(),
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.weights.Name < 0 || cfg.weights.ID < 0 || (cfg.weights.Name == 0 && cfg.weights.ID == 0) {
		return nil, fmt.Errorf("%w: signal weights must be non-negative with at least one positive", ErrInvalidConfig)
	}
	if cfg.thresholds.AutoGroup < cfg.thresholds.SuggestGroup || cfg.thresholds.SuggestGroup < cfg.thresholds.Review {
		return nil, fmt.Errorf("%w: thresholds must satisfy auto_group >= suggest_group >= review", ErrInvalidConfig)
	}

	rules, err := policy.NewRuleSet(cfg.rules)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}

	var metrics *matcherMetrics
	if cfg.meter != nil {
		metrics, err = newMatcherMetrics(cfg.meter)
		if err != nil {
			return nil, err
		}
	}

	if cfg.concurrency < 1 {
		cfg.concurrency = defaultConcurrency
	}

	return &Matcher{
		thresholds: cfg.thresholds,
		weights:    cfg.weights,
		resolver: names.NewResolver(names.Options{
			ExtraFamilies: cfg.families,
			Scores:        cfg.nameScores,
		}),
		rules:       rules,
		store:       cfg.store,
		logger:      cfg.logger,
		tracer:      cfg.tracer,
		metrics:     metrics,
		concurrency: cfg.concurrency,
	}, nil
}

// EvaluatePair produces the combined match verdict for two records.
//
// The name and ID comparators each produce a signal. An exact ID match
// dominates: the combined confidence is the larger of the two signals,
// so a weak name signal cannot drag down identity proven by the
// identifier. Otherwise the signals blend by weighted mean, where a
// signal produced from empty input carries zero weight so a missing ID
// does not penalize a strong name match.
//
// The verdict is total: any input, however malformed, yields a
// well-typed low-confidence result rather than an error.
func (m *Matcher) EvaluatePair(ctx context.Context, a, b Record) policy.MatchResult {
	start := time.Now()

	key := ""
	if m.store != nil {
		key = cache.Key(a.Name, a.IDNumber, b.Name, b.IDNumber)
		if result, ok, err := m.store.Get(ctx, key); err == nil && ok {
			return result
		} else if err != nil && m.logger != nil {
			m.logger.DebugContext(ctx, "verdict cache get failed, recomputing", "error", err)
		}
	}

	nameSig := m.resolver.Compare(a.Name, b.Name)
	idSig := ident.Compare(a.IDNumber, b.IDNumber)
	exactID := idSig.Match && idSig.Confidence == 1.0

	confidence, reason := m.combine(a, b, nameSig, idSig, exactID)

	result := m.thresholds.NewMatchResult(confidence, exactID, reason)
	result = m.rules.Apply(result, policy.RuleInput{
		Confidence:     confidence,
		NameConfidence: nameSig.Confidence,
		IDConfidence:   idSig.Confidence,
		ExactID:        exactID,
	})

	m.metrics.record(ctx, result, time.Since(start))

	if m.store != nil {
		if err := m.store.Set(ctx, key, result); err != nil && m.logger != nil {
			m.logger.DebugContext(ctx, "verdict cache set failed", "error", err)
		}
	}

	return result
}

// combine merges the two signals into one confidence value and picks
// the reason that best explains it.
func (m *Matcher) combine(a, b Record, nameSig, idSig policy.Signal, exactID bool) (float64, string) {
	if exactID {
		return policy.MaxConfidence(nameSig.Confidence, idSig.Confidence), idSig.Reason
	}

	nameUsable := names.Normalize(a.Name) != "" && names.Normalize(b.Name) != ""
	idUsable := ident.Normalize(a.IDNumber) != "" && ident.Normalize(b.IDNumber) != ""

	switch {
	case !nameUsable && !idUsable:
		return 0, "No usable identity signals"
	case !idUsable:
		return nameSig.Confidence, nameSig.Reason
	case !nameUsable:
		return idSig.Confidence, idSig.Reason
	}

	confidence := policy.CombineConfidences([]policy.WeightedSignal{
		{Confidence: nameSig.Confidence, Weight: m.weights.Name},
		{Confidence: idSig.Confidence, Weight: m.weights.ID},
	})

	reason := nameSig.Reason
	if idSig.Confidence > nameSig.Confidence {
		reason = idSig.Reason
	}
	return confidence, reason
}

// Close releases the verdict cache, if any.
func (m *Matcher) Close() error {
	if m.store == nil {
		return nil
	}
	return m.store.Close()
}
