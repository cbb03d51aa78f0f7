package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/photoclash/internal/model"
)

func setupCache(t *testing.T) (*RankingCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRankingCache(rdb, time.Minute), mr
}

func TestGetLeaderboard_ReadThrough(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()
	week := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

	loads := 0
	load := func(context.Context) ([]*model.WeeklyLeaderboard, error) {
		loads++
		return []*model.WeeklyLeaderboard{{CategoryID: "c1", UserID: "u1", Rank: 1, Points: 7}}, nil
	}

	first, err := c.GetLeaderboard(ctx, "c1", week, load)
	require.NoError(t, err)
	second, err := c.GetLeaderboard(ctx, "c1", week, load)
	require.NoError(t, err)

	assert.Equal(t, 1, loads)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].Points, second[0].Points)
}

func TestGetLeaderboard_LoadErrorNotCached(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()
	week := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

	_, err := c.GetLeaderboard(ctx, "c1", week, func(context.Context) ([]*model.WeeklyLeaderboard, error) {
		return nil, errors.New("db down")
	})
	assert.Error(t, err)

	rows, err := c.GetLeaderboard(ctx, "c1", week, func(context.Context) ([]*model.WeeklyLeaderboard, error) {
		return []*model.WeeklyLeaderboard{{UserID: "u1", Rank: 1}}, nil
	})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestInvalidateLeaderboard(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()
	week := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)

	loads := 0
	load := func(context.Context) ([]*model.WeeklyLeaderboard, error) {
		loads++
		return nil, nil
	}
	_, _ = c.GetLeaderboard(ctx, "c1", week, load)
	c.InvalidateLeaderboard(ctx, "c1", week)
	_, _ = c.GetLeaderboard(ctx, "c1", week, load)
	assert.Equal(t, 2, loads)
}

func TestGetHallOfFame_ReadThrough(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	loads := 0
	load := func(context.Context) ([]*model.HallOfFameEntry, error) {
		loads++
		return []*model.HallOfFameEntry{{CategoryID: "c1", UserID: "u1", MonthYear: "2026-08", Rank: 1}}, nil
	}

	_, err := c.GetHallOfFame(ctx, "c1", "2026-08", load)
	require.NoError(t, err)
	_, err = c.GetHallOfFame(ctx, "c1", "2026-08", load)
	require.NoError(t, err)
	assert.Equal(t, 1, loads)

	// TTL 到期后回源
	mr.FastForward(2 * time.Minute)
	_, err = c.GetHallOfFame(ctx, "c1", "2026-08", load)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}
