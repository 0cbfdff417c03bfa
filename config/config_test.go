package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridoc/entitymatch/policy"
)

const sampleYAML = `
thresholds:
  auto_group: 0.97
  suggest_group: 0.88
  review: 0.72
weights:
  name: 0.4
  id: 0.6
name_scores:
  canonical: 0.92
  variant: 0.8
families:
  suresh:
    - sureshe
    - soresh
rules:
  - name: containment-needs-name
    when: "id_confidence == 0.85 && name_confidence < 0.5"
    action: suggest
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	require.NotNil(t, cfg.Thresholds)
	assert.Equal(t, 0.97, cfg.Thresholds.AutoGroup)
	assert.Equal(t, 0.88, cfg.Thresholds.SuggestGroup)
	assert.Equal(t, 0.72, cfg.Thresholds.Review)

	require.NotNil(t, cfg.Weights)
	assert.Equal(t, 0.4, cfg.Weights.Name)
	assert.Equal(t, 0.6, cfg.Weights.ID)

	require.NotNil(t, cfg.NameScores)
	assert.Equal(t, 0.92, cfg.NameScores.Canonical)

	assert.Equal(t, []string{"sureshe", "soresh"}, cfg.Families["suresh"])

	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, policy.ActionSuggest, cfg.Rules[0].Action)
}

func TestParse_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Thresholds)
	assert.Nil(t, cfg.Weights)
	assert.Nil(t, cfg.NameScores)
	assert.Empty(t, cfg.Families)
	assert.Empty(t, cfg.Rules)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed yaml", ":\n  - ["},
		{"threshold out of range", "thresholds: {auto_group: 1.5, suggest_group: 0.85, review: 0.7}"},
		{"thresholds out of order", "thresholds: {auto_group: 0.8, suggest_group: 0.85, review: 0.7}"},
		{"negative weight", "weights: {name: -0.1, id: 0.5}"},
		{"all weights zero", "weights: {name: 0, id: 0}"},
		{"name score out of range", "name_scores: {canonical: 1.2, variant: 0.8}"},
		{"empty family root", "families: {'---': [x]}"},
		{"family without variants", "families: {ahmed: []}"},
		{"rule without name", "rules: [{when: 'true', action: suggest}]"},
		{"rule without condition", "rules: [{name: r, action: suggest}]"},
		{"rule with bad action", "rules: [{name: r, when: 'true', action: merge}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "matcher.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	t.Run("from file path", func(t *testing.T) {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.NotNil(t, cfg.Thresholds)
	})

	t.Run("from directory", func(t *testing.T) {
		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.NotNil(t, cfg.Thresholds)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("directory without config", func(t *testing.T) {
		_, err := Load(t.TempDir())
		assert.Error(t, err)
	})
}
