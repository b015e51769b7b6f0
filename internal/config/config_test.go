package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(5000), cfg.VisitorRate)
	assert.NotEmpty(t, cfg.CORSAllowedOrigins)
}

func TestParseFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("VISITOR_RATE", "7500")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, int64(7500), cfg.VisitorRate)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestParseRejectsNegativeVisitorRate(t *testing.T) {
	t.Setenv("VISITOR_RATE", "-1")

	_, err := Parse()
	assert.Error(t, err)
}
