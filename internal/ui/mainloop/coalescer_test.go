package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescer_MergesBurstIntoOneTask(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	value := 0
	for i := 1; i <= 5; i++ {
		c.Post("thumbnail:1", func() { value = i })
	}

	require.Len(t, queue, 1)
	assert.True(t, c.Pending("thumbnail:1"))
	queue[0]()

	assert.Equal(t, 5, value, "latest callback runs")
	assert.False(t, c.Pending("thumbnail:1"))
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	var ran []string
	c.Post("thumbnail:1", func() { ran = append(ran, "1") })
	c.Post("thumbnail:2", func() { ran = append(ran, "2") })
	c.Post("thumbnail:1", func() { ran = append(ran, "1b") })

	require.Len(t, queue, 2)
	for _, fn := range queue {
		fn()
	}
	assert.Equal(t, []string{"1b", "2"}, ran)

	c.Post("thumbnail:1", func() {})
	assert.Len(t, queue, 3, "a key can be posted again once flushed")
}

func TestCoalescer_DropsWorkAfterDestroy(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	ran := false
	c.Post("layout-save", func() { ran = true })
	c.Destroy()

	require.Len(t, queue, 1)
	queue[0]()
	assert.False(t, ran)

	c.Post("layout-save", func() { ran = true })
	assert.Len(t, queue, 1, "no new task after destroy")
}

func TestNewCoalescer_PanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { _ = NewCoalescer(nil) })
}
