package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventInvokeOrder(t *testing.T) {
	var e Event
	var calls []int
	e.AddListener(func() { calls = append(calls, 1) })
	e.AddListener(nil)
	e.AddListener(func() { calls = append(calls, 2) })

	e.Invoke()

	assert.Equal(t, []int{1, 2}, calls)
	assert.Equal(t, 2, e.ListenerCount())
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[*GameObject]
	var got *GameObject
	e.AddListener(func(g *GameObject) { got = g })

	obj := NewGameObject("Model")
	e.Invoke(obj)
	assert.Same(t, obj, got)

	e.RemoveAllListeners()
	assert.Zero(t, e.ListenerCount())
}
