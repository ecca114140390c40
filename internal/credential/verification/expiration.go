package verification

import (
	"time"

	"vcpipe/internal/credential/models"
	dErrors "vcpipe/pkg/domain-errors"
)

// isoLayouts are the ISO-8601 shapes accepted for validUntil. Values without
// an offset are read as UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// expiration returns the credential's expiry. validUntil takes precedence
// over the older expirationDate field. ok is false when neither is set.
func expiration(vc *models.VerifiableCredential) (value string, at time.Time, ok bool, err error) {
	raw := vc.ValidUntil
	if raw == nil {
		raw = vc.ExpirationDate
	}
	if raw == nil {
		return "", time.Time{}, false, nil
	}

	value, isString := raw.(string)
	if !isString {
		return "", time.Time{}, false, dErrors.New(dErrors.CodeValidation, "expirationDate must be a ISO string")
	}
	at, parsed := parseISO(value)
	if !parsed {
		return "", time.Time{}, false, dErrors.New(dErrors.CodeValidation, "Invalid expiration date: "+value)
	}
	return value, at, true, nil
}

func parseISO(value string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
