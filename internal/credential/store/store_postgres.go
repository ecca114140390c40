package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"vcpipe/internal/credential/models"
	"vcpipe/pkg/platform/sentinel"
)

const recordColumns = `id, credential_id, issuer, types, locator, valid_vc, reason, verified_at`

// PostgresStore persists verification records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, record models.VerificationRecord) error {
	types := record.Types
	if types == nil {
		types = []string{}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO verification_records (`+recordColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, record.ID, record.CredentialID, record.Issuer, pq.Array(types), record.Locator,
		record.ValidVC, record.Reason, record.VerifiedAt)
	if err != nil {
		return fmt.Errorf("insert verification record: %w", err)
	}
	return nil
}

func (s *PostgresStore) Latest(ctx context.Context, credentialID string) (*models.VerificationRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM verification_records
		WHERE credential_id = $1
		ORDER BY verified_at DESC
		LIMIT 1
	`, credentialID)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find verification record: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) History(ctx context.Context, credentialID string, limit int) ([]models.VerificationRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+recordColumns+`
		FROM verification_records
		WHERE credential_id = $1
		ORDER BY verified_at DESC
		LIMIT $2
	`, credentialID, limit)
	if err != nil {
		return nil, fmt.Errorf("list verification records: %w", err)
	}
	defer rows.Close()

	out := []models.VerificationRecord{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan verification record: %w", err)
		}
		out = append(out, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate verification records: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.VerificationRecord, error) {
	var record models.VerificationRecord
	var types pq.StringArray
	if err := row.Scan(
		&record.ID,
		&record.CredentialID,
		&record.Issuer,
		&types,
		&record.Locator,
		&record.ValidVC,
		&record.Reason,
		&record.VerifiedAt,
	); err != nil {
		return nil, err
	}
	record.Types = []string(types)
	return &record, nil
}
