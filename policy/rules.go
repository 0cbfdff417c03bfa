package policy

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Rule is a single calibration guardrail. Its condition is a CEL
// expression over the evaluated signals; when the condition holds, the
// suggested action is tightened to the rule's action if that action is
// less committal than the current one. Rules can never escalate a
// verdict, so the precision-first ordering of the base policy is
// preserved.
//
// Available CEL variables:
//   - confidence (double): the combined confidence
//   - name_confidence (double): the name signal confidence
//   - id_confidence (double): the ID signal confidence
//   - exact_id (bool): whether the IDs matched exactly
type Rule struct {
	// Name identifies the rule in reasons and logs.
	Name string `json:"name" yaml:"name"`

	// When is the CEL boolean condition.
	When string `json:"when" yaml:"when"`

	// Action is the action to tighten to when the condition holds.
	Action Action `json:"action" yaml:"action"`
}

// RuleInput carries the signal values a rule condition is evaluated over.
type RuleInput struct {
	Confidence     float64
	NameConfidence float64
	IDConfidence   float64
	ExactID        bool
}

type compiledRule struct {
	name    string
	action  Action
	program cel.Program
}

// RuleSet holds compiled guardrail rules. Build it once with
// NewRuleSet; it is immutable and safe for concurrent use.
type RuleSet struct {
	rules []compiledRule
}

// NewRuleSet compiles the given rules. Returns an error if a rule has
// an invalid action, a condition that does not compile, or a condition
// that does not evaluate to a boolean.
func NewRuleSet(rules []Rule) (*RuleSet, error) {
	if len(rules) == 0 {
		return &RuleSet{}, nil
	}

	env, err := cel.NewEnv(
		cel.Variable("confidence", cel.DoubleType),
		cel.Variable("name_confidence", cel.DoubleType),
		cel.Variable("id_confidence", cel.DoubleType),
		cel.Variable("exact_id", cel.BoolType),
	)
	if err != nil {
		return nil, fmt.Errorf("create rule environment: %w", err)
	}

	rs := &RuleSet{rules: make([]compiledRule, 0, len(rules))}
	for _, r := range rules {
		if !r.Action.IsValid() {
			return nil, fmt.Errorf("rule %q: invalid action: %s", r.Name, r.Action)
		}

		ast, iss := env.Compile(r.When)
		if iss.Err() != nil {
			return nil, fmt.Errorf("rule %q: compile condition: %w", r.Name, iss.Err())
		}
		if !ast.OutputType().IsExactType(cel.BoolType) {
			return nil, fmt.Errorf("rule %q: condition must evaluate to bool, got %s", r.Name, ast.OutputType())
		}

		prg, err := env.Program(ast)
		if err != nil {
			return nil, fmt.Errorf("rule %q: build program: %w", r.Name, err)
		}

		rs.rules = append(rs.rules, compiledRule{name: r.Name, action: r.Action, program: prg})
	}

	return rs, nil
}

// Len returns the number of compiled rules.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Apply evaluates every rule against the input and tightens the
// result's suggested action where a matching rule demands it. The
// match type and confidence are left untouched; only the action moves,
// and only toward less commitment. Rules whose evaluation fails are
// skipped rather than failing the whole verdict.
func (rs *RuleSet) Apply(result MatchResult, input RuleInput) MatchResult {
	if rs == nil || len(rs.rules) == 0 {
		return result
	}

	vars := map[string]any{
		"confidence":      input.Confidence,
		"name_confidence": input.NameConfidence,
		"id_confidence":   input.IDConfidence,
		"exact_id":        input.ExactID,
	}

	for _, r := range rs.rules {
		out, _, err := r.program.Eval(vars)
		if err != nil {
			continue
		}
		matched, ok := out.Value().(bool)
		if !ok || !matched {
			continue
		}
		if r.action.Commitment() < result.SuggestedAction.Commitment() {
			result.SuggestedAction = r.action
			if result.Reason != "" {
				result.Reason = fmt.Sprintf("%s (guardrail: %s)", result.Reason, r.name)
			} else {
				result.Reason = fmt.Sprintf("guardrail: %s", r.name)
			}
		}
	}

	return result
}
