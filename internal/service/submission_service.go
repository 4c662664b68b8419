package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"
	"unicode/utf8"

	"Event_Showcase/internal/model"
	"Event_Showcase/internal/pkg"
	"Event_Showcase/internal/repository/redis"
)

var (
	ErrInvalidSubmission = errors.New("invalid submission")
)

// SubmissionInput 经过 handler 绑定校验后的创建参数
type SubmissionInput struct {
	Name          string
	Author        string
	AuthorTwitter string
	Description   string
	Category      string
	ProjectURL    string
	SocialPostURL string
}

type SubmissionService struct {
	repo     *redis.SubmissionRepository
	producer *pkg.KafkaProducer
	smtp     pkg.SMTPConfig
	notifyTo string
}

func NewSubmissionService(producer *pkg.KafkaProducer, smtp pkg.SMTPConfig, notifyTo string) *SubmissionService {
	return &SubmissionService{
		repo:     &redis.SubmissionRepository{},
		producer: producer,
		smtp:     smtp,
		notifyTo: notifyTo,
	}
}

// Create 分配 ID 和创建时间后落库。ID、createdAt 都由服务端定，不收调用方的。
// 事件和通知邮件都是尽力而为，失败不影响投稿本身。
func (s *SubmissionService) Create(ctx context.Context, in SubmissionInput) (*model.Submission, error) {
	// handler 层已经绑定校验过；这里兜底再查一遍，
	// 防止别的调用路径绕过校验直接写库
	if err := validateInput(in); err != nil {
		return nil, err
	}

	sub := &model.Submission{
		ID:            pkg.GenerateID(),
		Name:          in.Name,
		Author:        in.Author,
		AuthorTwitter: in.AuthorTwitter,
		Description:   in.Description,
		Category:      in.Category,
		ProjectURL:    in.ProjectURL,
		SocialPostURL: in.SocialPostURL,
		CreatedAt:     time.Now().UnixMilli(),
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	// 旁路动作不占请求时长
	go func() {
		bg, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.producer.Publish(bg, pkg.Event{
			Type:         pkg.EventSubmissionCreated,
			SubmissionID: sub.ID,
			Category:     sub.Category,
		})
		if s.smtp.Enabled() && s.notifyTo != "" {
			_ = pkg.SendEmail(s.smtp, s.notifyTo,
				"新投稿："+sub.Name,
				pkg.SubmissionNotifyHTML(sub.Name, sub.Author, sub.Category, sub.ProjectURL))
		}
	}()

	return sub, nil
}

func (s *SubmissionService) List(ctx context.Context) ([]model.SubmissionWithVotes, error) {
	return s.repo.List(ctx)
}

func (s *SubmissionService) Get(ctx context.Context, id string) (*model.SubmissionWithVotes, error) {
	if id == "" {
		return nil, redis.ErrSubmissionNotFound
	}
	return s.repo.Get(ctx, id)
}

func validateInput(in SubmissionInput) error {
	// 长度限制按字符数算，不是字节数，和 binding 的 max 口径一致，
	// 否则中文等多字节输入会在这里被误杀
	if in.Name == "" || utf8.RuneCountInString(in.Name) > 100 {
		return fmt.Errorf("%w: name", ErrInvalidSubmission)
	}
	if in.Author == "" || utf8.RuneCountInString(in.Author) > 100 {
		return fmt.Errorf("%w: author", ErrInvalidSubmission)
	}
	if utf8.RuneCountInString(in.AuthorTwitter) > 100 {
		return fmt.Errorf("%w: authorTwitter", ErrInvalidSubmission)
	}
	if in.Description == "" || utf8.RuneCountInString(in.Description) > 500 {
		return fmt.Errorf("%w: description", ErrInvalidSubmission)
	}
	if !model.IsValidCategory(in.Category) {
		return fmt.Errorf("%w: category", ErrInvalidSubmission)
	}
	if _, err := url.ParseRequestURI(in.ProjectURL); err != nil {
		return fmt.Errorf("%w: projectUrl", ErrInvalidSubmission)
	}
	if in.SocialPostURL != "" {
		if _, err := url.ParseRequestURI(in.SocialPostURL); err != nil {
			return fmt.Errorf("%w: socialPostUrl", ErrInvalidSubmission)
		}
	}
	return nil
}
