package repository

import (
	"database/sql/driver"
	"net"
	"strings"

	"github.com/pkg/errors"
	"github.com/uptrace/bun/driver/pgdriver"
)

var (
	ErrIdentityKeyExists        = errors.New("identity key already exists")
	ErrIdentityKeyNotFound      = errors.New("identity key not found")
	ErrSignedPreKeyExists       = errors.New("signed prekey id already exists")
	ErrSignedPreKeyNotFound     = errors.New("no current signed prekey")
	ErrOneTimePreKeyExists      = errors.New("one-time prekey id already exists")
	ErrOneTimePreKeyNotFound    = errors.New("one-time prekey not found")
	ErrOneTimePreKeyAlreadyUsed = errors.New("one-time prekey already used")
	// ErrStorageUnavailable marks failures after which the whole operation
	// can be retried.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

const sqlStateUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == sqlStateUniqueViolation
	}
	return false
}

// isTransient matches connection loss, serialization failures, deadlocks and
// lock timeouts.
func isTransient(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		code := pgErr.Field('C')
		switch {
		case strings.HasPrefix(code, "08"), strings.HasPrefix(code, "40"):
			return true
		case code == "55P03", code == "57P01":
			return true
		}
		return false
	}
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// wrap annotates err with the failing operation, tagging retryable failures
// with ErrStorageUnavailable.
func wrap(err error, op string) error {
	if isTransient(err) {
		return errors.WithMessage(ErrStorageUnavailable, op+": "+err.Error())
	}
	return errors.Wrap(err, op)
}
