package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagDisabledByDefault(t *testing.T) {
	SetOutput(nil)
	assert.False(t, Enabled())
	Fragment(0, 4) // must not panic, no writer configured
}

func TestDiagTracesToWriter(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	assert.True(t, Enabled())
	Fragment(2, 16)
	Directory(4, 8)

	assert.Contains(t, buf.String(), "fragment 2 allocated, capacity=16")
	assert.Contains(t, buf.String(), "directory grown from 4 to 8 slots")
}
