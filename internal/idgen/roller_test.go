package idgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTestExists = errors.New("exists")

func TestNewRoller(t *testing.T) {
	tests := []struct {
		name               string
		countRegenerations uint
		length             uint
		maxLength          uint
		wantErr            error
	}{
		{name: "valid", countRegenerations: 5, length: 6, maxLength: 20, wantErr: nil},
		{name: "zero regenerations", countRegenerations: 0, length: 6, maxLength: 20, wantErr: ErrZeroCountRegenerations},
		{name: "zero length", countRegenerations: 5, length: 0, maxLength: 20, wantErr: ErrZeroLength},
		{name: "zero max length", countRegenerations: 5, length: 6, maxLength: 0, wantErr: ErrZeroMaxLength},
		{name: "max less length", countRegenerations: 5, length: 6, maxLength: 5, wantErr: ErrMaxLengthLessLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRoller(tt.countRegenerations, tt.length, tt.maxLength)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantErr == nil {
				assert.Equal(t, tt.length, r.Length())
			} else {
				assert.Nil(t, r)
			}
		})
	}
}

func TestRoller_Roll(t *testing.T) {
	r, err := NewRoller(5, 6, 20)
	require.NoError(t, err)

	id, err := r.Roll(func(string) error { return nil }, errTestExists)
	require.NoError(t, err)
	assert.Len(t, id, 6)
}

func TestRoller_Roll_GrowsAfterCollisions(t *testing.T) {
	r, err := NewRoller(5, 6, 20)
	require.NoError(t, err)

	calls := 0
	lengths := []int{}
	id, err := r.Roll(func(id string) error {
		calls++
		lengths = append(lengths, len(id))
		if calls <= 5 {
			return errTestExists
		}
		return nil
	}, errTestExists)
	require.NoError(t, err)
	assert.Len(t, id, 7)
	assert.Equal(t, []int{6, 6, 6, 6, 6, 7}, lengths)
	assert.Equal(t, uint(7), r.Length())
}

func TestRoller_Roll_MaxLengthExceeded(t *testing.T) {
	r, err := NewRoller(2, 3, 4)
	require.NoError(t, err)

	calls := 0
	_, err = r.Roll(func(string) error {
		calls++
		return errTestExists
	}, errTestExists)
	assert.ErrorIs(t, err, ErrMaxLengthExceeded)
	assert.Equal(t, 4, calls)
	assert.Equal(t, uint(4), r.Length())

	// the roller stays usable at the max length
	id, err := r.Roll(func(string) error { return nil }, errTestExists)
	require.NoError(t, err)
	assert.Len(t, id, 4)
}

func TestRoller_Roll_InsertError(t *testing.T) {
	r, err := NewRoller(5, 6, 20)
	require.NoError(t, err)

	errBroken := errors.New("broken")
	calls := 0
	_, err = r.Roll(func(string) error {
		calls++
		return errBroken
	}, errTestExists)
	assert.ErrorIs(t, err, errBroken)
	assert.Equal(t, 1, calls)
}
