// Package tilescan computes the squared Euclidean distance from one query
// vector to every point of a large flat reference set, streaming the set
// through a small reusable working buffer one fixed-size tile at a time.
//
// The geometry of a scan (feature dimension, tile size, tile count) is fixed
// when the Scanner is created; every invocation processes exactly one query
// against caller-owned bulk arrays and fills a caller-owned output array with
// one squared distance per reference point.
//
// Example:
//
//	s, err := tilescan.New(128, 256, 64)
//	if err != nil { ... }
//	out := make([]float32, s.Layout().Points())
//	if err := s.Scan(ctx, query, space, out); err != nil { ... }
package tilescan
