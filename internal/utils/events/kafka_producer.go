package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/segmentio/kafka-go"
)

var ErrPublisherFull = errors.New("event buffer is full")

type (
	// MessageWriter is satisfied by *kafka.Writer.
	MessageWriter interface {
		WriteMessages(ctx context.Context, msgs ...kafka.Message) error
		Close() error
	}

	KafkaPublisher struct {
		w       MessageWriter
		inbox   chan kafka.Message
		closeCh chan struct{}
	}
)

func NewKafkaPublisher(brokers []string, topic string, buf int) *KafkaPublisher {
	return NewKafkaPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}, buf)
}

func NewKafkaPublisherWithWriter(w MessageWriter, buf int) *KafkaPublisher {
	return &KafkaPublisher{
		w:       w,
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
	}
}

// Start drains the inbox until ctx is cancelled or Close is called, then
// flushes what is left and closes the writer.
func (p *KafkaPublisher) Start(ctx context.Context) {
	go func() {
		defer close(p.closeCh)
		for {
			select {
			case <-ctx.Done():
				p.drain()
				return
			case m, ok := <-p.inbox:
				if !ok {
					p.closeWriter()
					return
				}
				p.write(m)
			}
		}
	}()
}

func (p *KafkaPublisher) Publish(_ context.Context, eventType string, key string, payload any) error {
	env, err := NewEnvelope(eventType, key, payload)
	if err != nil {
		return err
	}
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  env.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}

	select {
	case p.inbox <- msg:
		return nil
	default:
		return ErrPublisherFull
	}
}

// Close stops accepting messages. Pending messages are flushed by the loop.
func (p *KafkaPublisher) Close() { close(p.inbox) }

func (p *KafkaPublisher) WaitClosed() { <-p.closeCh }

func (p *KafkaPublisher) drain() {
	for {
		select {
		case m, ok := <-p.inbox:
			if !ok {
				p.closeWriter()
				return
			}
			p.write(m)
		default:
			p.closeWriter()
			return
		}
	}
}

func (p *KafkaPublisher) write(m kafka.Message) {
	if err := p.w.WriteMessages(context.Background(), m); err != nil {
		log.Errorw("kafka write failed", "key", string(m.Key), "error", err)
	}
}

func (p *KafkaPublisher) closeWriter() {
	if err := p.w.Close(); err != nil {
		log.Errorw("kafka writer close failed", "error", err)
	}
}
