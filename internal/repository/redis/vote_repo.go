package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type VoteRepository struct{}

func voteSetKey(id string) string {
	return fmt.Sprintf("%s:%s", VoteSetKeyPrefix, id)
}

// Cast 投票。顺序是刻意的：先 SADD 占位，后 INCR 计数。
// SADD 的返回值区分"新加入"和"已存在"，这是去重的唯一正确性来源——
// 没有这个原子判断，并发下单指纹单票保不住。
// INCR 在 SADD 之后意味着计数永远不会超过集合里的指纹数：
// 第二步失败最多少计一票，同指纹重试会在第一步吃到"已存在"直接返回，
// 不会多计。
// 注意：这里不校验投稿是否存在，给未知 ID 投票会悄悄建出一套集合和计数器。
func (r *VoteRepository) Cast(ctx context.Context, submissionID, fingerprint string) (bool, int64, error) {
	added, err := Client.SAdd(ctx, voteSetKey(submissionID), fingerprint).Result()
	if err != nil {
		return false, 0, err
	}

	if added == 0 {
		// 重复投票，读当前票数返回即可
		votes, err := r.Count(ctx, submissionID)
		if err != nil {
			return false, 0, err
		}
		return false, votes, nil
	}

	votes, err := Client.Incr(ctx, voteCountKey(submissionID)).Result()
	if err != nil {
		return false, 0, err
	}
	return true, votes, nil
}

// Count 当前票数，计数器不存在按 0
func (r *VoteRepository) Count(ctx context.Context, submissionID string) (int64, error) {
	votes, err := Client.Get(ctx, voteCountKey(submissionID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return votes, nil
}

// Total 一批投稿的票数合计，一条 pipeline 拉完
func (r *VoteRepository) Total(ctx context.Context, submissionIDs []string) (int64, error) {
	if len(submissionIDs) == 0 {
		return 0, nil
	}
	cmds, err := Client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for _, id := range submissionIDs {
			p.Get(ctx, voteCountKey(id))
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, err
	}

	var total int64
	for _, cmd := range cmds {
		n, err := cmd.(*redis.StringCmd).Int64()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return 0, err
		}
		total += n
	}
	return total, nil
}
