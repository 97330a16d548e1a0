package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName  = errors.New("invalid name")
	ErrInvalidType  = errors.New("invalid type")
	ErrInvalidTTL   = errors.New("invalid TTL")
	ErrEmptyValue   = errors.New("empty value")
	ErrRequired     = errors.New("required field missing")
	ErrMissingToken = errors.New("missing API token")
	ErrZoneNotFound = errors.New("zone not found")

	ErrConfigReadFailed  = errors.New("config read failed")
	ErrConfigParseFailed = errors.New("config parse failed")

	ErrSnapshotReadFailed    = errors.New("snapshot read failed")
	ErrSnapshotWriteFailed   = errors.New("snapshot write failed")
	ErrSnapshotSerializeFail = errors.New("snapshot serialization failed")
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}

func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

func WrapEntity(entity, name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s[%s]: %w", entity, name, err)
}
