package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/photoclash/internal/model"
)

// RankingCache is a read-through cache for leaderboard and hall-of-fame pages.
// Entries are short-lived JSON blobs; the DB stays the source of truth and a
// calculator rerun simply outlives the TTL.
type RankingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRankingCache(rdb *redis.Client, ttl time.Duration) *RankingCache {
	return &RankingCache{rdb: rdb, ttl: ttl}
}

func leaderboardKey(categoryID string, weekStart time.Time) string {
	return fmt.Sprintf("lb:%s:%s", categoryID, weekStart.Format("2006-01-02"))
}

func hallOfFameKey(categoryID, monthYear string) string {
	return fmt.Sprintf("hof:%s:%s", categoryID, monthYear)
}

// GetLeaderboard returns the cached week page, or calls load and caches the result.
// Cache errors degrade to a direct load; they are never surfaced.
func (c *RankingCache) GetLeaderboard(ctx context.Context, categoryID string, weekStart time.Time,
	load func(context.Context) ([]*model.WeeklyLeaderboard, error)) ([]*model.WeeklyLeaderboard, error) {

	key := leaderboardKey(categoryID, weekStart)
	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var out []*model.WeeklyLeaderboard
		if uErr := json.Unmarshal(data, &out); uErr == nil {
			return out, nil
		}
	}

	rows, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(rows); err == nil {
		_ = c.rdb.Set(ctx, key, payload, c.ttl).Err()
	}
	return rows, nil
}

// GetHallOfFame mirrors GetLeaderboard for monthly pages.
func (c *RankingCache) GetHallOfFame(ctx context.Context, categoryID, monthYear string,
	load func(context.Context) ([]*model.HallOfFameEntry, error)) ([]*model.HallOfFameEntry, error) {

	key := hallOfFameKey(categoryID, monthYear)
	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var out []*model.HallOfFameEntry
		if uErr := json.Unmarshal(data, &out); uErr == nil {
			return out, nil
		}
	}

	rows, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if payload, err := json.Marshal(rows); err == nil {
		_ = c.rdb.Set(ctx, key, payload, c.ttl).Err()
	}
	return rows, nil
}

// InvalidateLeaderboard drops the cached page after a recalculation run.
func (c *RankingCache) InvalidateLeaderboard(ctx context.Context, categoryID string, weekStart time.Time) {
	_ = c.rdb.Del(ctx, leaderboardKey(categoryID, weekStart)).Err()
}

// InvalidateHallOfFame drops the cached month page after a recalculation run.
func (c *RankingCache) InvalidateHallOfFame(ctx context.Context, categoryID, monthYear string) {
	_ = c.rdb.Del(ctx, hallOfFameKey(categoryID, monthYear)).Err()
}
