package segment

// queue is a FIFO of pixel coordinates backed by a growable slice.
//
// Popped slots at the front are reclaimed when the backing array fills, so the
// slice never holds more than the number of pixels currently waiting.
type queue struct {
	items []point
	head  int
}

func newQueue() *queue {
	return &queue{items: make([]point, 0, 64)}
}

func (q *queue) len() int {
	return len(q.items) - q.head
}

func (q *queue) push(p point) {
	if len(q.items) == cap(q.items) && q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	q.items = append(q.items, p)
}

// pop removes and returns the oldest point. The queue must not be empty.
func (q *queue) pop() point {
	p := q.items[q.head]
	q.head++
	return p
}
