// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent overflow when converting
// between Go's int (platform-dependent) and the fixed-width types stored in
// space file headers. For conversions that are provably safe by domain
// constraints (loop indices, bounded counters), use direct casts instead.
package conv
