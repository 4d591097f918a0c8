package safepool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReturnsFreshValues(t *testing.T) {
	calls := 0
	pool := NewPool(func() *bytes.Buffer {
		calls++
		return new(bytes.Buffer)
	})

	a := pool.Get()
	b := pool.Get()

	assert.NotSame(t, a, b)
	assert.Equal(t, 2, calls)
}

func TestPutThenGet(t *testing.T) {
	pool := NewPool(func() *bytes.Buffer {
		return new(bytes.Buffer)
	})

	buf := pool.Get()
	buf.WriteString("foo")
	buf.Reset()
	pool.Put(buf)

	got := pool.Get()
	assert.NotNil(t, got)
	assert.Equal(t, 0, got.Len())
}
