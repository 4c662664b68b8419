package model

// Categories 投稿的固定分类集合，校验与统计共用
var Categories = []string{
	"gtm",
	"marketing",
	"design",
	"product",
	"animation",
	"dev",
	"data",
	"agents",
}

func IsValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Submission 社区投稿，创建后不可变更
// redis tag 对应 submission:{id} 哈希的字段名
type Submission struct {
	ID            string `json:"id" redis:"id"`
	Name          string `json:"name" redis:"name"`
	Author        string `json:"author" redis:"author"`
	AuthorTwitter string `json:"authorTwitter" redis:"authorTwitter"`
	Description   string `json:"description" redis:"description"`
	Category      string `json:"category" redis:"category"`
	ProjectURL    string `json:"projectUrl" redis:"projectUrl"`
	SocialPostURL string `json:"socialPostUrl" redis:"socialPostUrl"`
	CreatedAt     int64  `json:"createdAt" redis:"createdAt"` // 毫秒时间戳
}

// SubmissionWithVotes 查询时附带票数；票数归投票账本管，不落在投稿哈希里
type SubmissionWithVotes struct {
	Submission
	Votes int64 `json:"votes"`
}

// VoteResult Counted=false 表示同一指纹的重复投票，Votes 为当前值
type VoteResult struct {
	Counted bool  `json:"counted"`
	Votes   int64 `json:"votes"`
}

// StatsOverview 主办方视角的汇总数据
type StatsOverview struct {
	Submissions int64            `json:"submissions"`
	Votes       int64            `json:"votes"`
	Categories  map[string]int64 `json:"categories"`
}
