package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vcpipe/internal/credential/models"
	"vcpipe/internal/platform/kafka/producer"
	"vcpipe/pkg/testutil"
)

type recordingProducer struct {
	messages []*producer.Message
	err      error
}

func (p *recordingProducer) Produce(_ context.Context, msg *producer.Message) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, msg)
	return nil
}

func verificationRecord() models.VerificationRecord {
	return models.VerificationRecord{
		ID:           uuid.MustParse("6d1f0c4e-3b8a-4a57-9d5e-0f3a5f1b2c7d"),
		CredentialID: "urn:uuid:84a101bf-ded2-442d-b766-4e599d35fe89",
		Issuer:       "did:polygon-amoy:0xd9d8BA9D5956f78E02F4506940f42ac2dAB9DABd",
		Types:        []string{"VerifiableCredential", "userName"},
		Locator:      "polygon-amoy:0x2245D3fdFF160503897020A1165b796cEaC00B68:13",
		ValidVC:      false,
		Reason:       models.ReasonRevoked,
		VerifiedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600)),
	}
}

func TestPublishVerification(t *testing.T) {
	testutil.Given(t, "a publisher on the default topic", func(t *testing.T) {
		prod := &recordingProducer{}
		pub := NewPublisher(prod)

		testutil.When(t, "a verification is published", func(t *testing.T) {
			require.NoError(t, pub.PublishVerification(context.Background(), verificationRecord()))

			testutil.Then(t, "the record is keyed by credential id with typed headers", func(t *testing.T) {
				require.Len(t, prod.messages, 1)
				msg := prod.messages[0]
				assert.Equal(t, DefaultTopic, msg.Topic)
				assert.Equal(t, "urn:uuid:84a101bf-ded2-442d-b766-4e599d35fe89", string(msg.Key))
				assert.Equal(t, EventTypeVerified, msg.Headers["event_type"])

				var event VerificationEvent
				require.NoError(t, json.Unmarshal(msg.Value, &event))
				assert.Equal(t, "6d1f0c4e-3b8a-4a57-9d5e-0f3a5f1b2c7d", event.RecordID)
				assert.False(t, event.ValidVC)
				assert.Equal(t, models.ReasonRevoked, event.Reason)
				assert.Equal(t, time.UTC, event.VerifiedAt.Location())
				assert.Equal(t, 11, event.VerifiedAt.Hour())
			})
		})
	})

	testutil.Given(t, "a failing producer", func(t *testing.T) {
		pub := NewPublisher(&recordingProducer{err: errors.New("broker down")}, WithTopic("custom"))

		testutil.Then(t, "the error is wrapped", func(t *testing.T) {
			err := pub.PublishVerification(context.Background(), verificationRecord())
			assert.EqualError(t, err, "publish verification event: broker down")
		})
	})
}

func TestWithTopic(t *testing.T) {
	assert.Equal(t, "custom", NewPublisher(nil, WithTopic("custom")).topic)
	assert.Equal(t, DefaultTopic, NewPublisher(nil, WithTopic("")).topic)
}
