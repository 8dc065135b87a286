package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrTaskNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("delete: %w", ErrTaskNotFound)))
	assert.False(t, IsNotFoundError(ErrTaskExists))
	assert.False(t, IsNotFoundError(errors.New("boom")))

	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(ErrTaskExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("create: %w", ErrTaskExists)))
	assert.False(t, IsDuplicateError(ErrTaskNotFound))
}

func TestEntityErrorsWrapGenericOnes(t *testing.T) {
	assert.ErrorIs(t, ErrTaskNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrTaskExists, ErrDuplicate)
}

func TestDefaultListOptions(t *testing.T) {
	opts := DefaultListOptions()
	assert.Equal(t, 0, opts.Offset)
	assert.Equal(t, NoLimit, opts.Limit)
}
