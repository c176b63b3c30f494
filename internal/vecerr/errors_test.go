package vecerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutOfBoundsError(t *testing.T) {
	err := NewOutOfBounds(5, 3)
	assert.Equal(t, "index 5 out of bounds for length 3", err.Error())

	var target *OutOfBoundsError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, 5, target.Index)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestGrowthExhaustedError(t *testing.T) {
	err := NewGrowthExhausted("Linear", 1<<40, "exponent out of range")
	assert.Contains(t, err.Error(), "Linear")
	assert.Contains(t, err.Error(), "exponent out of range")
	assert.True(t, errors.Is(err, ErrGrowthExhausted))
}

func TestContractViolationError(t *testing.T) {
	err := NewContractViolation("Fragment.Push", "fragment at capacity")
	assert.Contains(t, err.Error(), "Fragment.Push")
	assert.True(t, errors.Is(err, ErrContractViolation))
}
