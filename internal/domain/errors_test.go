package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrInvalidCapacity", ErrInvalidCapacity},
		{"ErrInvalidItem", ErrInvalidItem},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrTooManyItems", ErrTooManyItems},
		{"ErrIndexMismatch", ErrIndexMismatch},
		{"ErrOverCapacity", ErrOverCapacity},
		{"ErrNotFound", ErrNotFound},
		{"ErrUnknownSolver", ErrUnknownSolver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrTooManyItems_Wrapped(t *testing.T) {
	err := fmt.Errorf("exhaustive: 30 items > 22: %w", ErrTooManyItems)
	assert.True(t, errors.Is(err, ErrTooManyItems))
	assert.False(t, errors.Is(err, ErrInvalidCapacity))
}
