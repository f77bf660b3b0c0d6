// Package distance exposes the float32 distance kernels used by the scan
// pipeline. The hot loops live in internal/math32; this package is the
// stable surface for callers that want the kernels without a Scanner.
package distance
