// Package primitive provides open-addressing hash containers over integer
// keys and values, with no per-entry allocation and no boxing.
//
// What
//
//   - Map[K, V]: an int-keyed, int-valued hash map with a configurable
//     miss value returned by Get for absent keys.
//   - Set[K]: an int hash set sharing the same table shape.
//   - Both are generic over the fixed-width integer kinds (int, int32,
//     int64, uint, uint32, uint64, uintptr and named types thereof), so a
//     packed 64-bit edge value and a 32-bit vertex id use the same code.
//
// Why
//
//	Go's built-in map hashes through runtime interfaces and allocates
//	buckets per entry group; for hot traversal loops over millions of
//	integer keys that overhead dominates. These tables store keys and
//	values in two flat slices and probe linearly, so a lookup touches one
//	or two cache lines.
//
// Design
//
//   - Open addressing with linear probing over a power-of-two capacity.
//   - Load factor 0.75; exceeding it doubles the table and reinserts every
//     live entry, amortized O(1) per operation.
//   - Remove uses backward-shift deletion rather than tombstones, so long
//     put/remove churn never degrades probe sequences.
//   - Keys are scrambled with the splitmix64 finalizer before masking, so
//     dense or stride-patterned id spaces spread evenly.
//
// Iteration (Keys, All, Values) is a lazy, finite sequence reflecting the
// table at call time; ranging again restarts it. Mutating the container
// while ranging is undefined.
//
// Complexity: Put/Get/Contains/Remove amortized O(1); iteration O(capacity).
//
// Failure: growth past the maximum power-of-two capacity panics with
// ErrTableOverflow. There is no recoverable error surface.
package primitive
