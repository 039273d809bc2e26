// Package grouping maintains the partition of grid-aligned square buildings
// into connected groups, updating it incrementally as buildings are placed
// and destroyed.
//
// What:
//
//   - Index[T] tracks buildings (anchor, size, opaque payload T) whose
//     footprints never overlap.
//   - Two buildings are linked when their footprints share a side segment
//     of positive length and the GroupingFunc accepts their payloads. The
//     predicate is consulted once, when the later of the two is inserted.
//   - A Group[T] is one connected component of those links, with the
//     bounding rectangle of its members. A building with no accepted
//     neighbor is a group of its own.
//
// How:
//
//   - Insert unions: the groups owning accepted neighbors are replaced by a
//     single group with the new building added. Its bounds are the union of
//     the merged bounds, which is cheap because growth is monotonic.
//   - Remove splits: the surviving members of the affected group are
//     re-partitioned with a breadth-first search restricted to that group,
//     and each piece gets bounds recomputed from its own members. Shrinking
//     is not monotonic, so the old bounds are never reused.
//
// Remove costs O(group size): the surviving members of the old group are
// searched again, and nothing outside that group is visited.
//
// Groups are immutable. Any change in membership produces new *Group values,
// so a slice returned by Index.Groups keeps describing the partition as it
// was when it was taken.
//
// Errors:
//
//   - ErrInvalidSize: Insert with a size below 1. Nothing is modified.
//
// An occupied footprint is not an error: Insert reports it with false.
// Removing an anchor that holds no building is a no-op.
//
// An Index is not safe for concurrent use; drive it from a single goroutine,
// typically the host's simulation tick.
package grouping
