package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"github.com/Qayoomitcourse/Airport-Pass-Management/internal/entity"
)

type Service interface {
	AttachPhoto(ctx context.Context, cnic, url string) error
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

type OnPhotoProcessedEvent struct {
	CNIC string `json:"cnic"`
	URL  string `json:"url"`
}

// OnPhotoProcessed links a photo uploaded through the standalone photo page
// to the pass holding the CNIC. A missing pass is logged and skipped: the
// photo may arrive before its pass is imported, and re-delivery would never
// succeed either.
func (h *EventHandler) OnPhotoProcessed(ctx context.Context, msg kafka.Message) error {
	var event OnPhotoProcessedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.CNIC == "" || event.URL == "" {
		return nil
	}

	err = h.s.AttachPhoto(ctx, event.CNIC, event.URL)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			slog.WarnContext(ctx, "photo for unknown CNIC", "cnic", event.CNIC)
			return nil
		}

		return fmt.Errorf("attach photo: %w", err)
	}

	return nil
}
