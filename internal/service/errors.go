package service

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNoWeights    = errors.New("no scoring weights available")
	ErrNotifyFailed = errors.New("notification delivery failed")
)

// notFound traduce pgx.ErrNoRows al error de servicio; el resto pasa envuelto.
func notFound(err error, what, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s %s", ErrNotFound, what, id)
	}
	return fmt.Errorf("load %s %s: %w", what, id, err)
}
