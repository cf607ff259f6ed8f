package containers

import (
	"errors"
	"testing"
)

func TestRingQueue(t *testing.T) {
	rq := NewRingQueue[int](3)
	if _, err := rq.Dequeue(); !errors.Is(err, ErrQueueEmpty) {
		t.Fatalf("Dequeue() on empty queue error = %v, want ErrQueueEmpty", err)
	}
	for i := 1; i <= 3; i++ {
		if err := rq.Enqueue(i); err != nil {
			t.Fatalf("Enqueue(%d) error = %v", i, err)
		}
	}
	if err := rq.Enqueue(4); !errors.Is(err, ErrQueueFull) {
		t.Fatalf("Enqueue() on full queue error = %v, want ErrQueueFull", err)
	}
	if v, _ := rq.Peek(); v != 1 {
		t.Errorf("Peek() = %d, want 1", v)
	}

	// Wrap around the backing slice.
	v, _ := rq.Dequeue()
	if v != 1 {
		t.Errorf("Dequeue() = %d, want 1", v)
	}
	_ = rq.Enqueue(4)
	want := []int{2, 3, 4}
	for _, w := range want {
		got, err := rq.Dequeue()
		if err != nil || got != w {
			t.Errorf("Dequeue() = %d, %v, want %d", got, err, w)
		}
	}
	if !rq.IsEmpty() || rq.Len() != 0 {
		t.Errorf("queue should be empty")
	}
}
