package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Publisher пишет жизненный цикл заявок в Kafka синхронным продюсером.
// Публикация best-effort: потерянное событие не откатывает уже
// зафиксированный переход, ошибка только логируется.
type Publisher struct {
	producer sarama.SyncProducer
	log      logger.Logger
	topic    string
}

func NewPublisher(brokers []string, topic string, log logger.Logger) (*Publisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true
	cfg.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &Publisher{
		producer: producer,
		log:      log,
		topic:    topic,
	}, nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

type statusChangedEvent struct {
	EventID   string    `json:"event_id"`
	EntryID   string    `json:"entry_id"`
	ShipperID int64     `json:"shipper_id"`
	CompanyID *int64    `json:"company_id,omitempty"`
	CourierID *int64    `json:"courier_id,omitempty"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to"`
	At        time.Time `json:"at"`
}

// EntryStatusChanged публикует переход заявки. Ключ партиционирования это
// entry_id, чтобы события одной заявки читались по порядку.
func (p *Publisher) EntryStatusChanged(ctx context.Context, entry *entities.Entry, from, to entities.EntryStatus) {
	payload, err := json.Marshal(statusChangedEvent{
		EventID:   uuid.NewString(),
		EntryID:   entry.ID.String(),
		ShipperID: entry.ShipperID,
		CompanyID: entry.CompanyID,
		CourierID: entry.CourierID,
		From:      from.String(),
		To:        to.String(),
		At:        time.Now().UTC(),
	})
	if err != nil {
		p.log.Error("events: marshal status changed", logger.NewField("error", err))
		return
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(entry.ID.String()),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		p.log.Error("events: publish status changed",
			logger.NewField("entry_id", entry.ID.String()),
			logger.NewField("error", err),
		)
		return
	}

	p.log.Info("events: status changed published",
		logger.NewField("entry_id", entry.ID.String()),
		logger.NewField("to", to.String()),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
}
