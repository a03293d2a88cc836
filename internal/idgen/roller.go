package idgen

import (
	"errors"
	"sync"
)

var (
	ErrZeroCountRegenerations = errors.New("count regenerations for length ID == 0")
	ErrZeroMaxLength          = errors.New("max length ID == 0")
	ErrMaxLengthLessLength    = errors.New("max length ID is less length ID")
	ErrMaxLengthExceeded      = errors.New("max length ID exceeded")
)

// Roller hands out IDs that a store accepted.
// After CountRegenerations collisions in a row the length grows by one, up to MaxLength.
// A Roll that exhausts MaxLength fails, later Rolls try MaxLength again.
type Roller struct {
	countRegenerations uint
	length             uint
	maxLength          uint

	mu sync.Mutex
}

func NewRoller(countRegenerations, length, maxLength uint) (*Roller, error) {
	if countRegenerations == 0 {
		return nil, ErrZeroCountRegenerations
	}
	if length == 0 {
		return nil, ErrZeroLength
	}
	if maxLength == 0 {
		return nil, ErrZeroMaxLength
	}
	if maxLength < length {
		return nil, ErrMaxLengthLessLength
	}
	return &Roller{
		countRegenerations: countRegenerations,
		length:             length,
		maxLength:          maxLength,
	}, nil
}

// Length returns the current ID length.
func (r *Roller) Length() uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.length
}

func (r *Roller) grow(from uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.length == from && r.length < r.maxLength {
		r.length++
	}
}

// Roll generates IDs and passes them to insert until insert succeeds.
// An error matching errExists means the ID is taken; any other error stops rolling.
func (r *Roller) Roll(insert func(id string) error, errExists error) (string, error) {
	for {
		length := r.Length()
		for i := uint(0); i < r.countRegenerations; i++ {
			id, err := Generate(length)
			if err != nil {
				return "", err
			}
			err = insert(id)
			if err == nil {
				return id, nil
			}
			if !errors.Is(err, errExists) {
				return "", err
			}
		}
		if length >= r.maxLength {
			return "", ErrMaxLengthExceeded
		}
		r.grow(length)
	}
}
