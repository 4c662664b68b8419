package service

import (
	"context"

	"Event_Showcase/internal/model"
	"Event_Showcase/internal/repository/redis"
)

type StatsService struct {
	subRepo  *redis.SubmissionRepository
	voteRepo *redis.VoteRepository
}

func NewStatsService() *StatsService {
	return &StatsService{
		subRepo:  &redis.SubmissionRepository{},
		voteRepo: &redis.VoteRepository{},
	}
}

// Overview 主办方面板用的汇总：投稿总数、票数合计、分类分布。
// 全部从派生索引现算，不缓存——量级是活动投稿数，没必要。
func (s *StatsService) Overview(ctx context.Context) (*model.StatsOverview, error) {
	ids, err := s.subRepo.IDs(ctx)
	if err != nil {
		return nil, err
	}

	votes, err := s.voteRepo.Total(ctx, ids)
	if err != nil {
		return nil, err
	}

	cats, err := s.subRepo.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}

	return &model.StatsOverview{
		Submissions: int64(len(ids)),
		Votes:       votes,
		Categories:  cats,
	}, nil
}
