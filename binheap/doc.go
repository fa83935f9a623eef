// Package binheap provides a generic binary min-heap ordered by a
// caller-supplied score function.
//
// What:
//
//   - Heap[T] keeps its elements in a slice laid out as an implicit binary
//     tree: parent(i) = (i+1)/2 - 1, children(i) = 2i+1, 2i+2.
//   - After every public call, score(items[i]) <= score(items[child(i)]).
//   - Elements are referenced, not copied. Remove matches by identity (==),
//     which for pointer element types means the same instance.
//
// Contract:
//
//	The score function must be pure and stable while an element resides in
//	the heap. The heap never rebuilds itself when an element's underlying
//	state changes after insertion; re-push it (Remove + Push) instead.
//
// Complexity:
//
//   - Push, Pop: O(log n).
//   - Remove:    O(n) for the identity scan, then O(log n).
//   - RemoveAll, Size, Items, Peek: O(1).
//
// Concurrency: none. A Heap must be owned by one goroutine at a time.
package binheap
