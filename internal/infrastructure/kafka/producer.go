package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/burhansaar3-alt/app/pkg/logger"
)

// Producer publishes order events asynchronously: Publish enqueues, a
// single goroutine writes. Remaining messages are flushed on shutdown.
type Producer struct {
	w       *kafka.Writer
	inbox   chan kafka.Message
	closeCh chan struct{}
}

func NewProducer(brokers []string, topic string, buf int) *Producer {
	return &Producer{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
		},
		inbox:   make(chan kafka.Message, buf),
		closeCh: make(chan struct{}),
	}
}

func (p *Producer) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				close(p.inbox)
				for m := range p.inbox {
					if err := p.w.WriteMessages(context.Background(), m); err != nil {
						logger.Warn("kafka flush failed: %v", err)
					}
				}
				_ = p.w.Close()
				close(p.closeCh)
				return
			case m, ok := <-p.inbox:
				if !ok {
					_ = p.w.Close()
					return
				}
				if err := p.w.WriteMessages(context.Background(), m); err != nil {
					logger.Warn("kafka write failed: %v", err)
				}
			}
		}
	}()
}

func (p *Producer) Publish(key, value []byte) {
	p.inbox <- kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	}
}

func (p *Producer) WaitClosed() { <-p.closeCh }
