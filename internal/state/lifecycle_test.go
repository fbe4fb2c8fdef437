package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycle_DisposeRunsLIFOOnce(t *testing.T) {
	var l Lifecycle
	var order []int
	l.OnDispose(func() { order = append(order, 1) })
	l.OnDispose(func() { order = append(order, 2) })
	unregister := l.OnDispose(func() { order = append(order, 3) })
	unregister()

	l.Dispose()
	l.Dispose()

	assert.Equal(t, []int{2, 1}, order)
	assert.True(t, l.Disposed())
}

func TestLifecycle_OnDisposeAfterDisposeRunsImmediately(t *testing.T) {
	var l Lifecycle
	l.Dispose()

	ran := false
	l.OnDispose(func() { ran = true })

	assert.True(t, ran)
}
