// Package bulk provides the caller-side bulk float32 arrays a scan consumes.
//
// The scan core treats bulk arrays as opaque linear buffers; this package
// covers the two common ways callers materialize them: plain heap slices and
// read-only memory-mapped files, which keep multi-gigabyte reference sets off
// the Go heap.
package bulk

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/hupe1980/tilescan/internal/mmap"
)

// Buffer is a read-only bulk array of float32 values.
type Buffer interface {
	// Float32s returns the full buffer contents.
	// The slice may alias mapped memory; callers must not modify it.
	Float32s() []float32

	// Close releases any resources backing the buffer.
	Close() error
}

type memBuffer struct {
	data []float32
}

// FromSlice wraps an in-memory slice as a Buffer.
func FromSlice(data []float32) Buffer {
	return &memBuffer{data: data}
}

func (b *memBuffer) Float32s() []float32 { return b.data }

func (b *memBuffer) Close() error { return nil }

type mappedBuffer struct {
	m    *mmap.File
	data []float32
}

// OpenFile maps a raw little-endian float32 file as a read-only Buffer.
// The file size must be a multiple of 4 bytes.
func OpenFile(path string) (Buffer, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	size := m.Size()
	if size%4 != 0 {
		m.Close()
		return nil, fmt.Errorf("bulk: file size %d is not a multiple of 4", size)
	}
	if size == 0 {
		return &mappedBuffer{m: m}, nil
	}

	// mmap returns page-aligned memory, so the zero-copy float32 view is safe.
	data := unsafe.Slice((*float32)(unsafe.Pointer(&m.Data[0])), size/4) //nolint:gosec // unsafe is required for mmap access

	return &mappedBuffer{m: m, data: data}, nil
}

func (b *mappedBuffer) Float32s() []float32 { return b.data }

func (b *mappedBuffer) Close() error {
	b.data = nil
	return b.m.Close()
}

// WriteFile writes data as a raw little-endian float32 file, suitable for
// reopening with OpenFile.
//
// Only little-endian hosts produce portable files; that matches every target
// this library runs on.
func WriteFile(path string, data []float32) error {
	var raw []byte
	if len(data) > 0 {
		raw = unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4) //nolint:gosec // zero-copy serialization
	}
	return os.WriteFile(path, raw, 0o600)
}
