package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBypassWhenUnconfigured(t *testing.T) {
	r := NewRedis(Options{}, nil)
	ctx := context.Background()

	assert.False(t, r.Available())
	assert.Error(t, r.Ping(ctx))
	require.NoError(t, r.SetJSON(ctx, "k", map[string]int{"a": 1}, 0))

	var out map[string]int
	hit, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, r.Delete(ctx, "k"))
	assert.NoError(t, r.Close())
}

func TestRedisBypassWhenUnreachable(t *testing.T) {
	r := NewRedis(Options{Addr: "127.0.0.1:1"}, nil)
	assert.False(t, r.Available())
	assert.Equal(t, DefaultTTL, r.ttl)
}

func TestNilRedisIsSafe(t *testing.T) {
	var r *Redis
	hit, err := r.GetJSON(context.Background(), "k", &struct{}{})
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, r.SetJSON(context.Background(), "k", 1, 0))
}
