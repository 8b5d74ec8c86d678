package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusDeliversAfterSwap(t *testing.T) {
	b := NewBus()
	var got []int
	Subscribe(b, func(e FoodShortage) { got = append(got, e.Unfed) })

	Emit(b, FoodShortage{Turn: 1, Unfed: 3})
	assert.Equal(t, 0, b.DispatchAll())
	assert.Empty(t, got)

	b.SwapBuffers()
	assert.Equal(t, 1, b.DispatchAll())
	assert.Equal(t, []int{3}, got)

	// front is drained after dispatch
	assert.Equal(t, 0, b.DispatchAll())
	assert.Equal(t, []int{3}, got)
}

func TestBusKeepsEmissionOrder(t *testing.T) {
	b := NewBus()
	var log []string
	Subscribe(b, func(e TaskCompleted) { log = append(log, "done "+e.Label) })
	Subscribe(b, func(e FoodShortage) { log = append(log, "hungry") })

	Emit(b, TaskCompleted{Label: "a"})
	Emit(b, FoodShortage{Unfed: 1})
	Emit(b, TaskCompleted{Label: "b"})
	b.SwapBuffers()
	b.DispatchAll()

	assert.Equal(t, []string{"done a", "hungry", "done b"}, log)
}

func TestBusIgnoresUnsubscribedTypes(t *testing.T) {
	b := NewBus()
	calls := 0
	Subscribe(b, func(ColonistStarved) { calls++ })
	Subscribe(b, func(ColonistStarved) { calls++ })

	Emit(b, BuildStarted{})
	Emit(b, ColonistStarved{})
	b.SwapBuffers()

	assert.Equal(t, 2, b.DispatchAll())
	assert.Equal(t, 2, calls)
}
