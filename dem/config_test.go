package dem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MEHFLT_CASE_INSENSITIVE_EXT", "true")
	t.Setenv("MEHFLT_PARALLELISM", "8")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{CaseInsensitiveExt: true, Parallelism: 8}, cfg)

	r := NewReader(cfg.Options()...)
	assert.True(t, r.caseInsensitive)
	assert.Equal(t, 8, r.parallelism)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"zero", "0"},
		{"negative", "-3"},
		{"no number", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MEHFLT_PARALLELISM", tt.value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewReaderDefaults(t *testing.T) {
	r := NewReader(WithParallelism(0), WithLogger(nil))

	assert.False(t, r.caseInsensitive)
	assert.Equal(t, defaultParallelism, r.parallelism)
	assert.NotNil(t, r.logger)
}
