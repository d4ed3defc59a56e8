package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	kafkaGo "github.com/segmentio/kafka-go"
)

// Publisher publishes JSON-encoded domain events to Kafka, keeping one
// long-lived writer per topic.
type Publisher struct {
	brokers []string

	mu      sync.Mutex
	writers map[string]*kafkaGo.Writer
}

// NewPublisher creates a Kafka publisher for the given brokers.
func NewPublisher(brokers []string) *Publisher {
	return &Publisher{
		brokers: brokers,
		writers: make(map[string]*kafkaGo.Writer),
	}
}

func (p *Publisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return p.writer(topic).WriteMessages(ctx, kafkaGo.Message{
		Key:   []byte(key),
		Value: payload,
	})
}

// Close shuts down every topic writer.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for topic, w := range p.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close writer for %s: %w", topic, err))
		}
	}
	p.writers = make(map[string]*kafkaGo.Writer)
	return errors.Join(errs...)
}

func (p *Publisher) writer(topic string) *kafkaGo.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	w, ok := p.writers[topic]
	if !ok {
		w = &kafkaGo.Writer{
			Addr:     kafkaGo.TCP(p.brokers...),
			Topic:    topic,
			Balancer: &kafkaGo.LeastBytes{},
		}
		p.writers[topic] = w
	}
	return w
}
