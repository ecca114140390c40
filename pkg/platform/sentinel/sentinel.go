package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) and handlers translate them into domain errors, so storage
// backends never leak driver errors such as sql.ErrNoRows or redis.Nil.
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	// ErrNotFound means no verification was recorded for the credential.
	ErrNotFound = errors.New("not found")
)
