package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

type PostCreated struct {
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

type LikeToggled struct {
	PostID    string `json:"post_id"`
	UserID    string `json:"user_id"`
	Liked     bool   `json:"liked"`
	LikeCount int64  `json:"like_count"`
}

type Producer struct {
	writer *kafka.Writer
}

// NewProducer returns nil when no broker is configured; publishing on a nil
// producer is a no-op so the service runs without Kafka.
func NewProducer(brokerURL, topic string) *Producer {
	if brokerURL == "" {
		return nil
	}
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers: []string{brokerURL},
		Topic:   topic,
	})
	return &Producer{writer: writer}
}

func (p *Producer) Publish(ctx context.Context, key string, event any) {
	if p == nil {
		return
	}
	b, err := json.Marshal(event)
	if err != nil {
		log.Printf("event marshal error: %v", err)
		return
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
	}); err != nil {
		// Events are best effort; the request already committed.
		log.Printf("kafka publish error: %v", err)
	}
}

func (p *Producer) Close() {
	if p == nil {
		return
	}
	_ = p.writer.Close()
}
