package queue_test

import (
	"testing"

	"github.com/stateforward/go-dfa/queue"
)

func TestQueue(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		q := queue.New[int]()
		if q.Len() != 0 {
			t.Errorf("Expected length 0, got %d", q.Len())
		}
		if _, ok := q.Pop(); ok {
			t.Error("Expected Pop on an empty queue to report no item")
		}
	})

	t.Run("FIFO", func(t *testing.T) {
		q := queue.New[string]()
		q.Push("a")
		q.Push("b")
		q.Push("c")
		if q.Len() != 3 {
			t.Errorf("Expected length 3, got %d", q.Len())
		}
		for _, expected := range []string{"a", "b", "c"} {
			item, ok := q.Pop()
			if !ok {
				t.Fatal("Expected an item")
			}
			if item != expected {
				t.Errorf("Expected %q, got %q", expected, item)
			}
		}
		if _, ok := q.Pop(); ok {
			t.Error("Expected the queue to be drained")
		}
	})

	t.Run("Interleaved", func(t *testing.T) {
		q := queue.New[int](4)
		q.Push(1)
		q.Push(2)
		if item, _ := q.Pop(); item != 1 {
			t.Errorf("Expected 1, got %d", item)
		}
		q.Push(3)
		if item, _ := q.Pop(); item != 2 {
			t.Errorf("Expected 2, got %d", item)
		}
		if item, _ := q.Pop(); item != 3 {
			t.Errorf("Expected 3, got %d", item)
		}
	})
}
