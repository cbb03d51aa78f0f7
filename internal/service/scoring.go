package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/d60-Lab/photoclash/internal/model"
	"github.com/d60-Lab/photoclash/internal/repository"
	"github.com/d60-Lab/photoclash/pkg/logger"
)

var (
	ErrInvalidVoteType = errors.New("invalid vote type")
)

// Tally 一张照片的票面统计
type Tally struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
	NetScore int `json:"net_score"`
}

// ScoreService 投票入口与计分回写
type ScoreService interface {
	SubmitVote(ctx context.Context, photoID, userID, voteType string) (Tally, error)
	RecomputeScore(ctx context.Context, photoID string) (Tally, error)
}

type scoreService struct {
	voteRepo  repository.VoteRepository
	photoRepo repository.PhotoRepository
}

func NewScoreService(voteRepo repository.VoteRepository, photoRepo repository.PhotoRepository) ScoreService {
	return &scoreService{voteRepo: voteRepo, photoRepo: photoRepo}
}

// SubmitVote 落票后整体重算照片计分。
// 票先落库（同键改票），计分读失败则跳过回写：宁可留旧分，不写错分。
func (s *scoreService) SubmitVote(ctx context.Context, photoID, userID, voteType string) (Tally, error) {
	if voteType != model.VoteTypeLike && voteType != model.VoteTypeDislike {
		return Tally{}, ErrInvalidVoteType
	}
	if _, err := s.photoRepo.GetByID(ctx, photoID); err != nil {
		return Tally{}, err
	}
	if err := s.voteRepo.Upsert(ctx, photoID, userID, voteType); err != nil {
		return Tally{}, err
	}
	return s.RecomputeScore(ctx, photoID)
}

// RecomputeScore 从全量投票重算并覆写 likes/dislikes/net_score。
// 始终整体覆写而非增量，漏写/重写后下一次重算即自愈。
func (s *scoreService) RecomputeScore(ctx context.Context, photoID string) (Tally, error) {
	votes, err := s.voteRepo.ListByPhoto(ctx, photoID)
	if err != nil {
		return Tally{}, err
	}
	t := tallyVotes(votes)
	if err := s.photoRepo.UpdateScore(ctx, photoID, t.Likes, t.Dislikes, t.NetScore); err != nil {
		logger.Warn("score write failed", zap.String("photo", photoID), zap.Error(err))
		return Tally{}, err
	}
	return t, nil
}

func tallyVotes(votes []*model.Vote) Tally {
	var t Tally
	for _, v := range votes {
		switch v.VoteType {
		case model.VoteTypeLike:
			t.Likes++
		case model.VoteTypeDislike:
			t.Dislikes++
		}
	}
	t.NetScore = t.Likes - t.Dislikes
	return t
}
