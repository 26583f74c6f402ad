package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MikeRez0/techxchange/internal/adapter/config"
	"github.com/MikeRez0/techxchange/internal/core/port"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var ErrDisabled = errors.New("kafka disabled")

type orderEventMessage struct {
	Type           string    `json:"type"`
	OrderID        string    `json:"orderId"`
	BuyerID        string    `json:"buyerId"`
	SellerID       string    `json:"sellerId"`
	ProductID      string    `json:"productId"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	CurrentStatus  string    `json:"currentStatus"`
	ActorID        string    `json:"actorId"`
	Quantity       int       `json:"quantity"`
	OccurredAt     time.Time `json:"occurredAt"`
}

func newOrderEventMessage(e port.OrderEvent) orderEventMessage {
	return orderEventMessage{
		Type:           string(e.Type),
		OrderID:        e.OrderID,
		BuyerID:        e.BuyerID,
		SellerID:       e.SellerID,
		ProductID:      e.ProductID,
		PreviousStatus: string(e.PreviousStatus),
		CurrentStatus:  string(e.CurrentStatus),
		ActorID:        e.ActorID,
		Quantity:       e.Quantity,
		OccurredAt:     e.OccurredAt.UTC(),
	}
}

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher streams order events keyed by order id, so one order's events stay ordered.
type KafkaPublisher struct {
	writer messageWriter
	logger *zap.Logger
}

func NewKafkaPublisher(conf *config.Kafka, log *zap.Logger) (*KafkaPublisher, error) {
	brokers := conf.BrokerList()
	if len(brokers) == 0 {
		return nil, ErrDisabled
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        conf.OrderTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		Async:        true,
	}
	w.Completion = func(messages []kafka.Message, err error) {
		if err != nil {
			log.Error("Kafka delivery failed", zap.Int("messages", len(messages)), zap.Error(err))
		}
	}

	return &KafkaPublisher{writer: w, logger: log}, nil
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event port.OrderEvent) error {
	data, err := json.Marshal(newOrderEventMessage(event))
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Fanout forwards every event to all publishers and joins their errors.
type Fanout []port.OrderEventPublisher

func (f Fanout) PublishOrderEvent(ctx context.Context, event port.OrderEvent) error {
	var errs []error
	for _, p := range f {
		if err := p.PublishOrderEvent(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
