// Package events publishes verification outcomes to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vcpipe/internal/credential/models"
	"vcpipe/internal/platform/kafka/producer"
)

const (
	DefaultTopic = "vcpipe.credential.verifications"

	EventTypeVerified = "credential.verified"
	schemaVersion     = "1"
)

// Producer is the subset of the Kafka producer the publisher needs.
type Producer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// VerificationEvent is the record value written for every verification.
type VerificationEvent struct {
	Type         string    `json:"type"`
	RecordID     string    `json:"recordId"`
	CredentialID string    `json:"credentialId"`
	Issuer       string    `json:"issuer"`
	Types        []string  `json:"types"`
	Locator      string    `json:"locator"`
	ValidVC      bool      `json:"validVC"`
	Reason       string    `json:"reason,omitempty"`
	VerifiedAt   time.Time `json:"verifiedAt"`
}

// Publisher keys records by credential ID so all verifications of one
// credential land on the same partition.
type Publisher struct {
	producer Producer
	topic    string
}

type Option func(*Publisher)

func WithTopic(topic string) Option {
	return func(p *Publisher) {
		if topic != "" {
			p.topic = topic
		}
	}
}

func NewPublisher(p Producer, opts ...Option) *Publisher {
	pub := &Publisher{producer: p, topic: DefaultTopic}
	for _, opt := range opts {
		opt(pub)
	}
	return pub
}

func (p *Publisher) PublishVerification(ctx context.Context, record models.VerificationRecord) error {
	value, err := json.Marshal(NewVerificationEvent(record))
	if err != nil {
		return fmt.Errorf("marshal verification event: %w", err)
	}

	msg := &producer.Message{
		Topic: p.topic,
		Key:   []byte(record.CredentialID),
		Value: value,
		Headers: map[string]string{
			"event_type":     EventTypeVerified,
			"schema_version": schemaVersion,
		},
	}
	if err := p.producer.Produce(ctx, msg); err != nil {
		return fmt.Errorf("publish verification event: %w", err)
	}
	return nil
}

func NewVerificationEvent(record models.VerificationRecord) VerificationEvent {
	return VerificationEvent{
		Type:         EventTypeVerified,
		RecordID:     record.ID.String(),
		CredentialID: record.CredentialID,
		Issuer:       record.Issuer,
		Types:        record.Types,
		Locator:      record.Locator,
		ValidVC:      record.ValidVC,
		Reason:       record.Reason,
		VerifiedAt:   record.VerifiedAt.UTC(),
	}
}
