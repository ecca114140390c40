// Package store persists verification records. The memory and Postgres
// backends keep the full history per credential and answer Latest from the
// most recent VerifiedAt. The Redis backend keeps the last saved record and
// the 100 newest history entries, both expiring after its TTL.
package store

import (
	"context"
	"sync"

	"vcpipe/internal/credential/models"
	"vcpipe/pkg/platform/sentinel"
)

// DefaultHistoryLimit bounds History when the caller passes a non-positive limit.
const DefaultHistoryLimit = 20

type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string][]models.VerificationRecord
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string][]models.VerificationRecord)}
}

func (s *InMemoryStore) Save(_ context.Context, record models.VerificationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.CredentialID] = append(s.records[record.CredentialID], record)
	return nil
}

// Latest returns sentinel.ErrNotFound when the credential was never verified.
func (s *InMemoryStore) Latest(_ context.Context, credentialID string) (*models.VerificationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.records[credentialID]
	if len(records) == 0 {
		return nil, sentinel.ErrNotFound
	}
	latest := records[0]
	for _, r := range records[1:] {
		if !r.VerifiedAt.Before(latest.VerifiedAt) {
			latest = r
		}
	}
	return &latest, nil
}

// History returns up to limit records, most recent first.
func (s *InMemoryStore) History(_ context.Context, credentialID string, limit int) ([]models.VerificationRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.records[credentialID]
	out := make([]models.VerificationRecord, 0, min(limit, len(records)))
	for i := len(records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, records[i])
	}
	return out, nil
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string][]models.VerificationRecord)
}
