package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const ShareRoutingKey = "itinerary.shared"

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body []byte) error
}

type Attachment struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Content     []byte `json:"content"`
}

// ShareJob is consumed by the mail worker that delivers shared itineraries.
type ShareJob struct {
	ItineraryID string     `json:"itineraryId"`
	SharedBy    string     `json:"sharedBy"`
	Recipient   string     `json:"to"`
	Subject     string     `json:"subject"`
	Body        string     `json:"text"`
	Attachment  Attachment `json:"attachment"`
	SharedAt    time.Time  `json:"sharedAt"`
}

type SharePublisher struct {
	publisher Publisher
	exchange  string
}

func NewSharePublisher(publisher Publisher, exchange string) *SharePublisher {
	return &SharePublisher{
		publisher: publisher,
		exchange:  exchange,
	}
}

func (p *SharePublisher) PublishShare(ctx context.Context, job ShareJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal share job: %w", err)
	}

	if err := p.publisher.Publish(ctx, p.exchange, ShareRoutingKey, body); err != nil {
		return fmt.Errorf("failed to publish share job: %w", err)
	}

	return nil
}
