package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("PG_HOST", "localhost")
	t.Setenv("PG_USER", "trivia")
	t.Setenv("PG_PASSWORD", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "trivia-api", cfg.Name)
	assert.Equal(t, "trivia", cfg.Postgres.Database)
	assert.Equal(t, 10, cfg.Trivia.QuestionsPerPage)
	assert.Equal(t, 5*time.Minute, cfg.Trivia.CategoryCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"}, cfg.CORS.AllowedMethods)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t,
		"host=localhost port=5432 user=trivia password=secret dbname=trivia sslmode=disable pool_max_conns=10",
		cfg.Postgres.ConnString())
}

func TestLoadRequiresPostgres(t *testing.T) {
	t.Setenv("PG_HOST", "")
	t.Setenv("PG_USER", "")
	t.Setenv("PG_PASSWORD", "")

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestLoadRejectsNonPositivePageSize(t *testing.T) {
	setRequired(t)
	t.Setenv("QUESTIONS_PER_PAGE", "0")

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestLoadRedisEnabled(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.True(t, cfg.Redis.Enabled())
}
