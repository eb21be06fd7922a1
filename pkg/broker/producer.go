package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/entity"
)

type Producer struct {
	l               *slog.Logger
	w               *kafka.Writer
	passEventsTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:               l,
		w:               w,
		passEventsTopic: topic,
	}
}

const (
	EventPassCreated    = "pass.created"
	EventPassUpdated    = "pass.updated"
	EventPassesDeleted  = "passes.deleted"
	EventPassesImported = "passes.imported"
	EventPassExpiring   = "pass.expiring"
)

type PassEvent struct {
	Type     string      `json:"type"`
	ID       uuid.UUID   `json:"id,omitempty"`
	PassID   string      `json:"pass_id,omitempty"`
	Category string      `json:"category,omitempty"`
	CNIC     string      `json:"cnic,omitempty"`
	IDs      []uuid.UUID `json:"ids,omitempty"`
	Count    int         `json:"count,omitempty"`
	Failed   int         `json:"failed,omitempty"`
}

func (p *Producer) PassCreated(ctx context.Context, pass entity.Pass) {
	p.send(ctx, pass.ID.String(), PassEvent{
		Type:     EventPassCreated,
		ID:       pass.ID,
		PassID:   pass.PassID,
		Category: pass.Category.String(),
		CNIC:     pass.CNIC,
	})
}

func (p *Producer) PassUpdated(ctx context.Context, pass entity.Pass) {
	p.send(ctx, pass.ID.String(), PassEvent{
		Type:     EventPassUpdated,
		ID:       pass.ID,
		PassID:   pass.PassID,
		Category: pass.Category.String(),
		CNIC:     pass.CNIC,
	})
}

func (p *Producer) PassesDeleted(ctx context.Context, ids []uuid.UUID) {
	if len(ids) == 0 {
		return
	}

	p.send(ctx, ids[0].String(), PassEvent{
		Type:  EventPassesDeleted,
		IDs:   ids,
		Count: len(ids),
	})
}

func (p *Producer) PassesImported(ctx context.Context, succeeded, failed int) {
	p.send(ctx, EventPassesImported, PassEvent{
		Type:   EventPassesImported,
		Count:  succeeded,
		Failed: failed,
	})
}

func (p *Producer) PassExpiring(ctx context.Context, pass entity.Pass) {
	p.send(ctx, pass.ID.String(), PassEvent{
		Type:     EventPassExpiring,
		ID:       pass.ID,
		PassID:   pass.PassID,
		Category: pass.Category.String(),
		CNIC:     pass.CNIC,
	})
}

func (p *Producer) send(ctx context.Context, key string, event PassEvent) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
		Topic: p.passEventsTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
