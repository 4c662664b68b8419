package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"Event_Showcase/internal/model"
)

const (
	SubmissionKeyPrefix  = "submission"           // submission:{id} 投稿哈希
	SubmissionsAllKey    = "submissions:all"      // 全量投稿的时间索引（zset，score=createdAt）
	CategoryKeyPrefix    = "submissions:category" // submissions:category:{cat} 分类索引
	VoteCountKeyPrefix   = "vote:count"           // vote:count:{id} 票数计数器
	VoteSetKeyPrefix     = "votes"                // votes:{id} 已投票指纹集合
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
)

type SubmissionRepository struct{}

func submissionKey(id string) string {
	return fmt.Sprintf("%s:%s", SubmissionKeyPrefix, id)
}

func categoryKey(cat string) string {
	return fmt.Sprintf("%s:%s", CategoryKeyPrefix, cat)
}

func voteCountKey(id string) string {
	return fmt.Sprintf("%s:%s", VoteCountKeyPrefix, id)
}

// Create 落库投稿的四个写入：投稿哈希、时间索引、分类索引、票数计数器。
// 用普通 pipeline 打包，不是事务——四步各自幂等，重试安全：
// 计数器用 SETNX 初始化，重放不会把已有票数清零。
// 中途宕机的窗口要认账：可能出现索引里有 ID 但哈希缺失（List 会跳过），
// 或哈希已写入但计数器还不存在（读侧一律把缺失计数当 0，不当错误）。
func (r *SubmissionRepository) Create(ctx context.Context, sub *model.Submission) error {
	fields := map[string]interface{}{
		"id":            sub.ID,
		"name":          sub.Name,
		"author":        sub.Author,
		"authorTwitter": sub.AuthorTwitter,
		"description":   sub.Description,
		"category":      sub.Category,
		"projectUrl":    sub.ProjectURL,
		"socialPostUrl": sub.SocialPostURL,
		"createdAt":     sub.CreatedAt,
	}

	_, err := Client.Pipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, submissionKey(sub.ID), fields)
		p.ZAdd(ctx, SubmissionsAllKey, redis.Z{Score: float64(sub.CreatedAt), Member: sub.ID})
		p.SAdd(ctx, categoryKey(sub.Category), sub.ID)
		p.SetNX(ctx, voteCountKey(sub.ID), 0, 0)
		return nil
	})
	return err
}

// List 按创建时间倒序返回全部投稿，并附带当前票数。
// 先取索引，再用一条 pipeline 批量拉哈希和计数，避免逐条往返。
// 索引里有 ID 但哈希不存在时静默跳过该条（创建窗口期的已知降级），
// 计数器缺失按 0 处理。
func (r *SubmissionRepository) List(ctx context.Context) ([]model.SubmissionWithVotes, error) {
	ids, err := Client.ZRevRange(ctx, SubmissionsAllKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []model.SubmissionWithVotes{}, nil
	}

	cmds, err := Client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for _, id := range ids {
			p.HGetAll(ctx, submissionKey(id))
			p.Get(ctx, voteCountKey(id))
		}
		return nil
	})
	// pipeline 里计数器 key 缺失会以 redis.Nil 形式冒出来，不算失败
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	list := make([]model.SubmissionWithVotes, 0, len(ids))
	for i := range ids {
		hcmd := cmds[i*2].(*redis.MapStringStringCmd)
		if len(hcmd.Val()) == 0 {
			continue
		}
		var sub model.Submission
		if err := hcmd.Scan(&sub); err != nil {
			return nil, err
		}

		votes, err := cmds[i*2+1].(*redis.StringCmd).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, err
		}
		list = append(list, model.SubmissionWithVotes{Submission: sub, Votes: votes})
	}
	return list, nil
}

// Get 单条查询，不走索引，直接读哈希和计数器
func (r *SubmissionRepository) Get(ctx context.Context, id string) (*model.SubmissionWithVotes, error) {
	hcmd := Client.HGetAll(ctx, submissionKey(id))
	if err := hcmd.Err(); err != nil {
		return nil, err
	}
	if len(hcmd.Val()) == 0 {
		return nil, ErrSubmissionNotFound
	}
	var sub model.Submission
	if err := hcmd.Scan(&sub); err != nil {
		return nil, err
	}

	votes, err := Client.Get(ctx, voteCountKey(id)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	return &model.SubmissionWithVotes{Submission: sub, Votes: votes}, nil
}

// CountAll 时间索引里的投稿总数
func (r *SubmissionRepository) CountAll(ctx context.Context) (int64, error) {
	return Client.ZCard(ctx, SubmissionsAllKey).Result()
}

// IDs 时间索引里的全部投稿 ID，新的在前
func (r *SubmissionRepository) IDs(ctx context.Context) ([]string, error) {
	return Client.ZRevRange(ctx, SubmissionsAllKey, 0, -1).Result()
}

// CategoryCounts 各分类下的投稿数。分类索引是派生数据，只用来做统计和筛选，
// 丢了可以从投稿哈希重建，不是数据源。
func (r *SubmissionRepository) CategoryCounts(ctx context.Context) (map[string]int64, error) {
	cmds, err := Client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for _, cat := range model.Categories {
			p.SCard(ctx, categoryKey(cat))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(model.Categories))
	for i, cat := range model.Categories {
		counts[cat] = cmds[i].(*redis.IntCmd).Val()
	}
	return counts, nil
}
