package redis

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"Event_Showcase/internal/model"
)

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	Client = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = Client.Close()
	})
	return mr
}

func newSubmission(id string, createdAt int64) *model.Submission {
	return &model.Submission{
		ID:            id,
		Name:          "Demo",
		Author:        "Ana",
		AuthorTwitter: "",
		Description:   "A tool",
		Category:      "dev",
		ProjectURL:    "https://x.test",
		SocialPostURL: "",
		CreatedAt:     createdAt,
	}
}

func TestSubmissionCreateThenGet(t *testing.T) {
	setupRedis(t)
	repo := &SubmissionRepository{}
	ctx := context.Background()

	sub := newSubmission("100-abcdef", 100)
	require.NoError(t, repo.Create(ctx, sub))

	got, err := repo.Get(ctx, sub.ID)
	require.NoError(t, err)
	require.Equal(t, *sub, got.Submission)
	require.Equal(t, int64(0), got.Votes)
}

func TestSubmissionCreateInitializesCounterOnce(t *testing.T) {
	mr := setupRedis(t)
	repo := &SubmissionRepository{}
	ctx := context.Background()

	sub := newSubmission("100-abcdef", 100)
	require.NoError(t, repo.Create(ctx, sub))
	require.NoError(t, mr.Set(voteCountKey(sub.ID), "7"))

	// Create 重放不能把已有票数清零（SETNX 语义）
	require.NoError(t, repo.Create(ctx, sub))
	got, err := repo.Get(ctx, sub.ID)
	require.NoError(t, err)
	require.Equal(t, int64(7), got.Votes)
}

func TestSubmissionGetMissing(t *testing.T) {
	setupRedis(t)
	repo := &SubmissionRepository{}

	_, err := repo.Get(context.Background(), "no-such-id")
	require.ErrorIs(t, err, ErrSubmissionNotFound)
}

func TestSubmissionListNewestFirst(t *testing.T) {
	setupRedis(t)
	repo := &SubmissionRepository{}
	ctx := context.Background()

	for i, id := range []string{"1-aaaaaa", "2-bbbbbb", "3-cccccc"} {
		require.NoError(t, repo.Create(ctx, newSubmission(id, int64(100+i))))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "3-cccccc", list[0].ID)
	require.Equal(t, "2-bbbbbb", list[1].ID)
	require.Equal(t, "1-aaaaaa", list[2].ID)
}

func TestSubmissionListSkipsOrphanIndexEntry(t *testing.T) {
	mr := setupRedis(t)
	repo := &SubmissionRepository{}
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSubmission("1-aaaaaa", 100)))
	require.NoError(t, repo.Create(ctx, newSubmission("2-bbbbbb", 200)))

	// 模拟创建窗口：索引里有 ID 但哈希没写成
	mr.Del(submissionKey("1-aaaaaa"))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "2-bbbbbb", list[0].ID)
}

func TestSubmissionListMissingCounterReadsZero(t *testing.T) {
	mr := setupRedis(t)
	repo := &SubmissionRepository{}
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSubmission("1-aaaaaa", 100)))
	mr.Del(voteCountKey("1-aaaaaa"))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, int64(0), list[0].Votes)

	got, err := repo.Get(ctx, "1-aaaaaa")
	require.NoError(t, err)
	require.Equal(t, int64(0), got.Votes)
}

func TestSubmissionCategoryCounts(t *testing.T) {
	setupRedis(t)
	repo := &SubmissionRepository{}
	ctx := context.Background()

	for i, cat := range []string{"dev", "dev", "design"} {
		sub := newSubmission(fmt.Sprintf("%d-aaaaaa", i+1), int64(100+i))
		sub.Category = cat
		require.NoError(t, repo.Create(ctx, sub))
	}

	counts, err := repo.CategoryCounts(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), counts["dev"])
	require.Equal(t, int64(1), counts["design"])
	require.Equal(t, int64(0), counts["gtm"])
	require.Len(t, counts, len(model.Categories))
}
