package scoring

import "errors"

// Errores locales y recuperables por el llamador. Ninguno es fatal para un batch.
var (
	ErrInvalidTraitRange      = errors.New("trait value out of range")
	ErrMismatchedTraitVectors = errors.New("mismatched trait vectors")
	ErrEmptyTraitVector       = errors.New("empty trait vector")
	ErrUnknownCurrency        = errors.New("unknown currency code")
	ErrUnknownLocation        = errors.New("unknown location")
	ErrScoreOutOfRange        = errors.New("sub-score out of range")
	ErrInsufficientData       = errors.New("insufficient data")
)
