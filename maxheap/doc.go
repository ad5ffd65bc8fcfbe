// Package maxheap provides a binary max-heap stored in a dense slice.
//
// Layout
//
//	Position i (0-indexed) has its parent at (i-1)/2 and its children at
//	2i+1 and 2i+2. For every position i > 0: data[parent(i)] >= data[i].
//
// Operations
//
//   - Insert appends and sifts up while the parent is strictly smaller,
//     so equal values never swap.
//   - ExtractMax swaps the root with the last element, pops it, and sifts
//     the new root down, always swapping with the larger child.
//   - Peek (alias FindMax) reads the root in O(1).
//   - From heapifies an existing slice bottom-up in O(n).
//
// Empty heaps never error: ExtractMax and Peek return ok == false.
//
// Complexity
//
//   - Insert, ExtractMax: O(log n)
//   - Peek, Len: O(1)
//   - From, Validate: O(n)
//
// The heap is not safe for concurrent use.
package maxheap
