package service

import (
	"context"
	"errors"
	"time"

	"Event_Showcase/internal/model"
	"Event_Showcase/internal/pkg"
	"Event_Showcase/internal/repository/redis"
)

var (
	ErrInvalidVote = errors.New("invalid vote")
)

type VoteService struct {
	repo     *redis.VoteRepository
	producer *pkg.KafkaProducer
}

func NewVoteService(producer *pkg.KafkaProducer) *VoteService {
	return &VoteService{
		repo:     &redis.VoteRepository{},
		producer: producer,
	}
}

// Cast 投票去重和计数全靠 Redis 原子原语，服务层不加锁。
// 和源站一致：不校验投稿是否存在（决策记录见 DESIGN.md），
// 限流在中间件里挡，账本自身不依赖限流也保持正确。
func (s *VoteService) Cast(ctx context.Context, submissionID, fingerprint string) (*model.VoteResult, error) {
	if submissionID == "" || fingerprint == "" {
		return nil, ErrInvalidVote
	}

	counted, votes, err := s.repo.Cast(ctx, submissionID, fingerprint)
	if err != nil {
		return nil, err
	}

	if counted {
		go func() {
			bg, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = s.producer.Publish(bg, pkg.Event{
				Type:         pkg.EventVoteCounted,
				SubmissionID: submissionID,
				Votes:        votes,
			})
		}()
	}

	return &model.VoteResult{Counted: counted, Votes: votes}, nil
}
