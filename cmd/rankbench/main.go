package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/d60-Lab/photoclash/config"
	"github.com/d60-Lab/photoclash/internal/model"
	"github.com/d60-Lab/photoclash/internal/repository"
	"github.com/d60-Lab/photoclash/internal/service"
	"github.com/d60-Lab/photoclash/pkg/database"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func pct(vs []time.Duration, p float64) time.Duration {
	if len(vs) == 0 { return 0 }
	xs := append([]time.Duration(nil), vs...)
	sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
	k := int(math.Ceil(p*float64(len(xs)))) - 1
	if k < 0 { k = 0 }
	if k >= len(xs) { k = len(xs) - 1 }
	return xs[k]
}

// rankbench: 压测投票重算与周榜/名人堂全量计算的耗时
func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	must(0, database.AutoMigrate(db))

	USERS := 500
	PHOTOS := 2000
	VOTES := 20000
	RUNS := 20
	if s := os.Getenv("USERS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { USERS = v } }
	if s := os.Getenv("PHOTOS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { PHOTOS = v } }
	if s := os.Getenv("VOTES"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { VOTES = v } }
	if s := os.Getenv("RUNS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { RUNS = v } }

	photoRepo := repository.NewPhotoRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	lbRepo := repository.NewLeaderboardRepository(db)
	hofRepo := repository.NewHallOfFameRepository(db)

	scoreSvc := service.NewScoreService(voteRepo, photoRepo)
	lbSvc := service.NewLeaderboardService(photoRepo, categoryRepo, lbRepo)
	hofSvc := service.NewHallOfFameService(photoRepo, categoryRepo, hofRepo)

	ctx := context.Background()
	now := time.Now()

	// seed: 一个分类 + USERS 个用户的 PHOTOS 张照片
	cat := &model.Category{ID: uuid.New().String(), Name: "bench", CategoryType: model.CategoryTypePermanent, IsActive: true}
	must(0, categoryRepo.Create(ctx, cat))

	userIDs := make([]string, USERS)
	for i := range userIDs { userIDs[i] = uuid.New().String() }
	photoIDs := make([]string, PHOTOS)
	for i := 0; i < PHOTOS; i++ {
		p := &model.Photo{
			ID:         uuid.New().String(),
			UserID:     userIDs[rand.Intn(USERS)],
			CategoryID: cat.ID,
			PhotoURL:   "https://example.com/p.jpg",
		}
		must(0, photoRepo.Create(ctx, p))
		photoIDs[i] = p.ID
	}

	// vote path: 每票触发一次全量重算
	voteLat := make([]time.Duration, 0, VOTES)
	for i := 0; i < VOTES; i++ {
		photoID := photoIDs[rand.Intn(PHOTOS)]
		voter := userIDs[rand.Intn(USERS)]
		vt := model.VoteTypeLike
		if rand.Intn(4) == 0 { vt = model.VoteTypeDislike }
		t0 := time.Now()
		_, _ = scoreSvc.SubmitVote(ctx, photoID, voter, vt)
		voteLat = append(voteLat, time.Since(t0))
	}
	fmt.Printf("vote+rescore: n=%d p50=%v p99=%v\n", len(voteLat), pct(voteLat, 0.5), pct(voteLat, 0.99))

	// leaderboard full recompute
	lbLat := make([]time.Duration, 0, RUNS)
	for i := 0; i < RUNS; i++ {
		t0 := time.Now()
		_, _ = lbSvc.CalculateWeek(ctx, cat.ID, now)
		lbLat = append(lbLat, time.Since(t0))
	}
	fmt.Printf("leaderboard: runs=%d p50=%v p99=%v\n", RUNS, pct(lbLat, 0.5), pct(lbLat, 0.99))

	// hall of fame full recompute
	hofLat := make([]time.Duration, 0, RUNS)
	for i := 0; i < RUNS; i++ {
		t0 := time.Now()
		_, _ = hofSvc.CalculateMonth(ctx, now)
		hofLat = append(hofLat, time.Since(t0))
	}
	fmt.Printf("hall-of-fame: runs=%d p50=%v p99=%v\n", RUNS, pct(hofLat, 0.5), pct(hofLat, 0.99))
}
