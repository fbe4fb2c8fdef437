package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSubscriber struct {
	calls int
}

func (c *countingSubscriber) Invalidate() { c.calls++ }

func TestCell_SetNotifiesSynchronously(t *testing.T) {
	s := NewScheduler()
	c := NewCell(s, 0)
	sub := &countingSubscriber{}
	c.Subscribe(sub)

	c.Set(5)

	assert.Equal(t, 5, c.Get())
	assert.Equal(t, 1, sub.calls)
	assert.Equal(t, 1, s.Flushes())
}

func TestCell_UpdateUsesValueAtApplyTime(t *testing.T) {
	s := NewScheduler()
	c := NewCell(s, 1)

	s.Batch(func() {
		snapshot := c.Get()
		c.Update(func(p int) int { return p + 1 })
		got := c.Update(func(p int) int { return p * 10 })
		assert.Equal(t, 1, snapshot)
		assert.Equal(t, 20, got)
		assert.Equal(t, 20, c.Get(), "read after write inside a batch sees the new value")
	})
	assert.Equal(t, 20, c.Get())
}

func TestCell_BatchNotifiesEachSubscriberOnce(t *testing.T) {
	s := NewScheduler()
	a := NewCell(s, 0)
	b := NewCell(s, "")
	sub := &countingSubscriber{}
	a.Subscribe(sub)
	b.Subscribe(sub)

	s.Batch(func() {
		a.Set(1)
		b.Set("one")
		a.Set(2)
		assert.Equal(t, 0, sub.calls, "no notification before the batch closes")
	})

	assert.Equal(t, 1, sub.calls)
	assert.Equal(t, 1, s.Flushes())
}

func TestCell_NestedBatchFlushesAtOutermost(t *testing.T) {
	s := NewScheduler()
	c := NewCell(s, 0)
	sub := &countingSubscriber{}
	c.Subscribe(sub)

	s.Batch(func() {
		s.Batch(func() { c.Set(1) })
		assert.Equal(t, 0, sub.calls)
		c.Set(2)
	})
	assert.Equal(t, 1, sub.calls)
}

func TestCell_SubscriberTransitionsRunInNextPass(t *testing.T) {
	s := NewScheduler()
	src := NewCell(s, 0)
	derived := NewCell(s, 0)
	var seen []int
	src.SubscribeFunc(func() { derived.Set(src.Get() * 2) })
	derived.SubscribeFunc(func() { seen = append(seen, derived.Get()) })

	src.Set(3)

	assert.Equal(t, []int{6}, seen)
	assert.Equal(t, 2, s.Flushes())
}

func TestCell_Unsubscribe(t *testing.T) {
	s := NewScheduler()
	c := NewCell(s, 0)
	sub := &countingSubscriber{}
	unsub := c.Subscribe(sub)
	c.Subscribe(sub)

	c.Set(1)
	unsub()
	c.Set(2)

	assert.Equal(t, 1, sub.calls)
}

func TestCell_DisposeClearsAndFreezes(t *testing.T) {
	s := NewScheduler()
	c := NewCell(s, 7)
	sub := &countingSubscriber{}
	c.Subscribe(sub)

	c.Dispose()
	c.Set(8)
	got := c.Update(func(p int) int { return p + 1 })

	require.True(t, c.Disposed())
	assert.Equal(t, 7, got)
	assert.Equal(t, 7, c.Get())
	assert.Zero(t, sub.calls)
}

func TestWatch_ObservesWithoutWriting(t *testing.T) {
	s := NewScheduler()
	c := NewCell(s, 0)
	var seen []int
	Watch(c, func(v int) { seen = append(seen, v) })

	s.Batch(func() {
		c.Set(1)
		c.Set(2)
	})
	c.Set(3)

	assert.Equal(t, []int{2, 3}, seen)
}

func TestRef_DoesNotNotify(t *testing.T) {
	r := NewRef(0)
	r.Set(4)
	assert.Equal(t, 4, r.Current())
}
