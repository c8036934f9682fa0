// SPDX-License-Identifier: MIT

// Package archive provides Bounded, a fixed-capacity set ordered by int64
// timestamp that evicts the oldest entries first.
//
// Ordering:
//   - Primary key: timestamp ascending.
//   - Ties: insertion order (a monotonically increasing sequence number), so
//     iteration is fully deterministic.
//
// Complexity:
//   - Insert: O(log K) plus O(log K) per eviction.
//   - Range: O(log K + m) for m visited entries.
//
// Concurrency:
//   - Bounded is NOT goroutine-safe. Owners guard it with their own lock
//     (streamart.Engine wraps archive mutation and reads in one RWMutex).
package archive
