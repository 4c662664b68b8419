package pkg

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	EventSubmissionCreated = "submission.created"
	EventVoteCounted       = "vote.counted"
)

type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Event 投到分析 topic 的事件体，key 用投稿 ID 保证同一投稿的事件有序
type Event struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	SubmissionID string `json:"submissionId"`
	Votes        int64  `json:"votes,omitempty"`
	Category     string `json:"category,omitempty"`
	At           int64  `json:"at"`
}

func NewKafkaProducer(cfg KafkaConfig) (*KafkaProducer, error) {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &KafkaProducer{writer: w, topic: cfg.Topic}, nil
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// Publish 发一条事件。p 为 nil 表示没配 Kafka，直接当 no-op。
func (p *KafkaProducer) Publish(ctx context.Context, evt Event) error {
	if p == nil || p.writer == nil {
		return nil
	}
	evt.ID = uuid.NewString()
	evt.At = time.Now().UnixMilli()

	value, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.SubmissionID),
		Value: value,
	})
}
