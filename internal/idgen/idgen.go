// Package idgen generates short random tokens used as URL codes and user IDs.
package idgen

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Alphabet of generated tokens (base-36).
const (
	Symbols      string = "0123456789abcdefghijklmnopqrstuvwxyz"
	CountSymbols        = len(Symbols)

	// DefaultLength is the token length used when nothing else is configured.
	DefaultLength uint = 6
)

// ErrZeroLength is returned when a zero-length token is requested.
var ErrZeroLength = errors.New("length ID == 0")

var countSymbolsBig = big.NewInt(int64(CountSymbols))

// Generate returns a random token of the given length.
// Uniqueness is not guaranteed: callers re-roll on collision.
func Generate(length uint) (string, error) {
	if length == 0 {
		return "", ErrZeroLength
	}
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, countSymbolsBig)
		if err != nil {
			return "", err
		}
		b[i] = Symbols[n.Int64()]
	}
	return string(b), nil
}
