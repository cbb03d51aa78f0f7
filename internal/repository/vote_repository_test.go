package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/photoclash/internal/model"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.Category{}, &model.Photo{}, &model.Vote{},
		&model.WeeklyLeaderboard{}, &model.HallOfFameEntry{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestVoteUpsert_UniquePerVoter(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "p1", "u1", model.VoteTypeLike))
	require.NoError(t, repo.Upsert(ctx, "p1", "u1", model.VoteTypeDislike))
	require.NoError(t, repo.Upsert(ctx, "p1", "u2", model.VoteTypeLike))
	require.NoError(t, repo.Upsert(ctx, "p2", "u1", model.VoteTypeLike))

	votes, err := repo.ListByPhoto(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, votes, 2)

	byUser := map[string]string{}
	for _, v := range votes {
		byUser[v.UserID] = v.VoteType
	}
	assert.Equal(t, model.VoteTypeDislike, byUser["u1"])
	assert.Equal(t, model.VoteTypeLike, byUser["u2"])
}

func TestLeaderboardUpsert_CompositeKey(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewLeaderboardRepository(db)
	ctx := context.Background()

	week := mustParseDate(t, "2026-08-23")
	first := []model.WeeklyLeaderboard{
		{ID: "a", CategoryID: "c1", UserID: "u1", Rank: 1, Points: 10, WeekStartDate: week, WeekEndDate: week.AddDate(0, 0, 7)},
	}
	require.NoError(t, repo.UpsertEntries(ctx, first))

	// 同键覆写名次与积分，不新增行
	second := []model.WeeklyLeaderboard{
		{ID: "b", CategoryID: "c1", UserID: "u1", Rank: 2, Points: 4, WeekStartDate: week, WeekEndDate: week.AddDate(0, 0, 7)},
	}
	require.NoError(t, repo.UpsertEntries(ctx, second))

	rows, err := repo.ListWeek(ctx, "c1", week)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Rank)
	assert.Equal(t, 4, rows[0].Points)
}

func TestHallOfFamePrune(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewHallOfFameRepository(db)
	ctx := context.Background()

	entries := make([]model.HallOfFameEntry, 0, 5)
	for i := 1; i <= 5; i++ {
		entries = append(entries, model.HallOfFameEntry{
			ID: string(rune('a' + i)), PhotoID: "p", CategoryID: "c1", UserID: "u",
			MonthYear: "2026-08", Rank: i, LikesCount: 10 - i,
		})
	}
	require.NoError(t, repo.UpsertEntries(ctx, entries))
	require.NoError(t, repo.PruneBeyond(ctx, "c1", "2026-08", 3))

	rows, err := repo.ListMonth(ctx, "c1", "2026-08")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestHallOfFamePruneStale_RemovesDisplacedUsers(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewHallOfFameRepository(db)
	ctx := context.Background()

	old := []model.HallOfFameEntry{
		{ID: "x1", PhotoID: "p1", CategoryID: "c1", UserID: "u1", MonthYear: "2026-08", Rank: 1, LikesCount: 9},
		{ID: "x2", PhotoID: "p2", CategoryID: "c1", UserID: "u2", MonthYear: "2026-08", Rank: 2, LikesCount: 5},
	}
	require.NoError(t, repo.UpsertEntries(ctx, old))

	// u1 掉榜，u2 顶到第 1：旧 (u1,1)、(u2,2) 行都不属于新结果集
	current := []model.HallOfFameEntry{
		{ID: "y1", PhotoID: "p2", CategoryID: "c1", UserID: "u2", MonthYear: "2026-08", Rank: 1, LikesCount: 5},
	}
	require.NoError(t, repo.UpsertEntries(ctx, current))
	require.NoError(t, repo.PruneStale(ctx, "c1", "2026-08", current))

	rows, err := repo.ListMonth(ctx, "c1", "2026-08")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "u2", rows[0].UserID)
	assert.Equal(t, 1, rows[0].Rank)

	// 其他月份/分类不受影响
	other := []model.HallOfFameEntry{
		{ID: "z1", PhotoID: "p9", CategoryID: "c1", UserID: "u9", MonthYear: "2026-07", Rank: 1, LikesCount: 2},
	}
	require.NoError(t, repo.UpsertEntries(ctx, other))
	require.NoError(t, repo.PruneStale(ctx, "c1", "2026-08", current))
	july, err := repo.ListMonth(ctx, "c1", "2026-07")
	require.NoError(t, err)
	assert.Len(t, july, 1)
}
