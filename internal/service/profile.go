package service

import (
	"context"

	"github.com/d60-Lab/photoclash/internal/model"
	"github.com/d60-Lab/photoclash/internal/repository"
)

// 徽章取前三名战绩，个人页最多展示 5 枚
const (
	badgeMaxRank    = 3
	badgeMaxDisplay = 5
)

// Badge 个人页战绩徽章，来自周榜与名人堂的前三名记录
type Badge struct {
	BadgeType  string `json:"badge_type"` // weekly / hall_of_fame
	CategoryID string `json:"category_id"`
	Rank       int    `json:"rank"`
	Period     string `json:"period"` // 周起始日期或 YYYY-MM
}

// Profile 个人页聚合
type Profile struct {
	User   *model.User    `json:"user"`
	Photos []*model.Photo `json:"photos"`
	Badges []Badge        `json:"badges"`
}

type ProfileService interface {
	Get(ctx context.Context, userID string) (*Profile, error)
}

type profileService struct {
	userRepo  repository.UserRepository
	photoRepo repository.PhotoRepository
	lbRepo    repository.LeaderboardRepository
	hofRepo   repository.HallOfFameRepository
}

func NewProfileService(userRepo repository.UserRepository, photoRepo repository.PhotoRepository, lbRepo repository.LeaderboardRepository, hofRepo repository.HallOfFameRepository) ProfileService {
	return &profileService{userRepo: userRepo, photoRepo: photoRepo, lbRepo: lbRepo, hofRepo: hofRepo}
}

func (s *profileService) Get(ctx context.Context, userID string) (*Profile, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	photos, err := s.photoRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	badges := make([]Badge, 0, badgeMaxDisplay)
	hof, err := s.hofRepo.ListTopPlacements(ctx, userID, badgeMaxRank, badgeMaxDisplay)
	if err != nil {
		return nil, err
	}
	for _, e := range hof {
		badges = append(badges, Badge{BadgeType: "hall_of_fame", CategoryID: e.CategoryID, Rank: e.Rank, Period: e.MonthYear})
	}
	if len(badges) < badgeMaxDisplay {
		weekly, err := s.lbRepo.ListTopPlacements(ctx, userID, badgeMaxRank, badgeMaxDisplay-len(badges))
		if err != nil {
			return nil, err
		}
		for _, e := range weekly {
			badges = append(badges, Badge{BadgeType: "weekly", CategoryID: e.CategoryID, Rank: e.Rank, Period: e.WeekStartDate.Format("2006-01-02")})
		}
	}

	return &Profile{User: u, Photos: photos, Badges: badges}, nil
}
