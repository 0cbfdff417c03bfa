package names

import (
	"strings"

	"github.com/veridoc/entitymatch/policy"
)

// Scores are the confidences assigned to dictionary-backed name
// relations by Resolver.Compare.
type Scores struct {
	// Canonical is the confidence when every token of both names maps
	// to the same canonical form.
	Canonical float64 `json:"canonical" yaml:"canonical"`

	// Variant is the confidence when at least one token pair is a
	// known transliteration-variant relation.
	Variant float64 `json:"variant" yaml:"variant"`
}

// DefaultScores returns the calibrated name-signal scores.
func DefaultScores() Scores {
	return Scores{Canonical: 0.9, Variant: 0.85}
}

// Options configures a Resolver.
type Options struct {
	// ExtraFamilies are additional canonical root -> variants entries
	// merged over the built-in dictionary. Roots and variants are
	// normalized before indexing.
	ExtraFamilies map[string][]string

	// Scores overrides the name-signal confidences. Zero fields fall
	// back to DefaultScores.
	Scores Scores
}

// Resolver recognizes known spelling-variant families for a fixed set
// of name roots. It is immutable after construction and safe for
// concurrent use.
type Resolver struct {
	// rootOf maps every known token (roots included) to its canonical
	// root.
	rootOf map[string]string

	scores Scores
}

// NewResolver builds a resolver from the built-in dictionary plus any
// extra families from the options.
func NewResolver(opts Options) *Resolver {
	r := &Resolver{
		rootOf: make(map[string]string),
		scores: opts.Scores,
	}
	if r.scores.Canonical == 0 {
		r.scores.Canonical = DefaultScores().Canonical
	}
	if r.scores.Variant == 0 {
		r.scores.Variant = DefaultScores().Variant
	}

	r.addFamilies(builtinFamilies)
	r.addFamilies(opts.ExtraFamilies)
	return r
}

func (r *Resolver) addFamilies(families map[string][]string) {
	for root, variants := range families {
		root = Normalize(root)
		if root == "" {
			continue
		}
		r.rootOf[root] = root
		for _, v := range variants {
			v = Normalize(v)
			if v == "" || v == root {
				continue
			}
			r.rootOf[v] = root
		}
	}
}

// defaultResolver is built once at init from the built-in dictionary
// and never mutated.
var defaultResolver = NewResolver(Options{})

// Default returns the process-wide resolver over the built-in
// dictionary.
func Default() *Resolver {
	return defaultResolver
}

// CanonicalForm returns the dictionary root if the token is itself a
// root or a listed variant of one; otherwise the normalized token
// unchanged.
func (r *Resolver) CanonicalForm(token string) string {
	token = Normalize(token)
	if root, ok := r.rootOf[token]; ok {
		return root
	}
	return token
}

// Canonicalize maps every token of a name through CanonicalForm and
// rejoins with single spaces.
func (r *Resolver) Canonicalize(name string) string {
	tokens := strings.Fields(Normalize(name))
	for i, t := range tokens {
		tokens[i] = r.CanonicalForm(t)
	}
	return strings.Join(tokens, " ")
}

// AreVariants reports whether any token pair across the two names is a
// dictionary-backed transliteration relation. Identical tokens do not
// count as variants; only spellings that map to the same canonical
// root via the dictionary do.
func (r *Resolver) AreVariants(name1, name2 string) bool {
	tokens1 := strings.Fields(Normalize(name1))
	tokens2 := strings.Fields(Normalize(name2))

	for _, t1 := range tokens1 {
		root1, ok := r.rootOf[t1]
		if !ok {
			continue
		}
		for _, t2 := range tokens2 {
			if t1 == t2 {
				continue
			}
			if root2, ok := r.rootOf[t2]; ok && root1 == root2 {
				return true
			}
		}
	}
	return false
}

// Compare produces the name-similarity signal for two raw names.
// Tiers, first match wins: empty input scores 0; identical normalized
// forms score 1.0; identical canonical forms score the Canonical
// confidence; any variant token pair scores the Variant confidence;
// otherwise 0.
func (r *Resolver) Compare(name1, name2 string) policy.Signal {
	n1 := Normalize(name1)
	n2 := Normalize(name2)

	switch {
	case n1 == "" || n2 == "":
		return policy.Signal{Match: false, Confidence: 0, Reason: "One or both names are empty"}
	case n1 == n2:
		return policy.Signal{Match: true, Confidence: 1.0, Reason: "Exact name match"}
	case r.Canonicalize(n1) == r.Canonicalize(n2):
		return policy.Signal{Match: true, Confidence: r.scores.Canonical, Reason: "Names match after transliteration canonicalization"}
	case r.AreVariants(n1, n2):
		return policy.Signal{Match: true, Confidence: r.scores.Variant, Reason: "Names contain known transliteration variants"}
	default:
		return policy.Signal{Match: false, Confidence: 0, Reason: "No name match"}
	}
}

// AreVariants reports whether the two names are transliteration
// variants under the built-in dictionary.
func AreVariants(name1, name2 string) bool {
	return defaultResolver.AreVariants(name1, name2)
}

// CanonicalForm resolves a token against the built-in dictionary.
func CanonicalForm(token string) string {
	return defaultResolver.CanonicalForm(token)
}

// Canonicalize canonicalizes a name against the built-in dictionary.
func Canonicalize(name string) string {
	return defaultResolver.Canonicalize(name)
}

// Compare produces the name signal using the built-in dictionary.
func Compare(name1, name2 string) policy.Signal {
	return defaultResolver.Compare(name1, name2)
}
