package binheap

// Heap is a binary min-heap over elements of type T.
type Heap[T comparable] struct {
	items []T
	score func(T) float64
}

// New returns an empty heap ordered by score; smaller scores pop first.
// Panics if score is nil: a heap without ordering is a programmer error.
func New[T comparable](score func(T) float64) *Heap[T] {
	if score == nil {
		panic("binheap: New(nil score)")
	}

	return &Heap[T]{score: score}
}

// Items exposes the backing slice in heap order. It is a read-only view:
// mutating it breaks the heap invariant.
func (h *Heap[T]) Items() []T { return h.items }

// Size returns the number of elements held.
func (h *Heap[T]) Size() int { return len(h.items) }

// Push appends x and sifts it up to its place.
func (h *Heap[T]) Push(x T) {
	h.items = append(h.items, x)
	h.bubbleUp(len(h.items) - 1)
}

// Peek returns the minimum element without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}

	return h.items[0], true
}

// Pop removes and returns the minimum element. ok is false on an empty heap.
//
// Steps:
//  1. Take the root.
//  2. Move the last element into the root slot (if any remain).
//  3. Sink it down, swapping with the strictly smaller child each level.
func (h *Heap[T]) Pop() (result T, ok bool) {
	n := len(h.items)
	if n == 0 {
		return result, false
	}

	result = h.items[0]
	end := h.items[n-1]
	h.clearSlot(n - 1)
	h.items = h.items[:n-1]

	if len(h.items) > 0 {
		h.items[0] = end
		h.sinkDown(0)
	}

	return result, true
}

// Remove deletes the first element identical to x. It reports whether x
// was found; a missing element is a no-op.
//
// The tail element fills the hole and is then sifted both up and down:
// exactly one direction has an effect, running both is safe.
func (h *Heap[T]) Remove(x T) bool {
	n := len(h.items)
	for i := 0; i < n; i++ {
		if h.items[i] != x {
			continue
		}

		end := h.items[n-1]
		h.clearSlot(n - 1)
		h.items = h.items[:n-1]
		if i == n-1 {
			return true
		}

		h.items[i] = end
		h.bubbleUp(i)
		h.sinkDown(i)

		return true
	}

	return false
}

// RemoveAll drops every element.
func (h *Heap[T]) RemoveAll() {
	h.items = nil
}

// clearSlot zeroes a slot about to fall off the end so pointer elements
// are not kept alive by the backing array.
func (h *Heap[T]) clearSlot(i int) {
	var zero T
	h.items[i] = zero
}

func (h *Heap[T]) bubbleUp(n int) {
	elem := h.items[n]
	score := h.score(elem)

	for n > 0 {
		parentN := ((n + 1) >> 1) - 1
		parent := h.items[parentN]

		// Parent scores lower or equal: in order.
		if score >= h.score(parent) {
			break
		}

		h.items[parentN] = elem
		h.items[n] = parent
		n = parentN
	}
}

func (h *Heap[T]) sinkDown(n int) {
	length := len(h.items)
	elem := h.items[n]
	elemScore := h.score(elem)

	for {
		child2N := (n + 1) << 1
		child1N := child2N - 1

		swap := -1
		var child1Score float64

		if child1N < length {
			child1Score = h.score(h.items[child1N])
			if child1Score < elemScore {
				swap = child1N
			}
		}

		if child2N < length {
			child2Score := h.score(h.items[child2N])
			bound := elemScore
			if swap != -1 {
				bound = child1Score
			}
			if child2Score < bound {
				swap = child2N
			}
		}

		if swap == -1 {
			return
		}

		h.items[n] = h.items[swap]
		h.items[swap] = elem
		n = swap
	}
}
