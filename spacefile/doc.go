// Package spacefile implements a small on-disk snapshot format for reference
// sets: a fixed header (magic, version, dim, point count, compression,
// checksum) followed by the point data as one optionally compressed block.
//
// It exists so large search spaces can be materialized once and reloaded
// cheaply between runs; the scan core itself never touches the filesystem.
package spacefile
