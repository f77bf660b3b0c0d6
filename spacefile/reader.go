package spacefile

import (
	"encoding/binary"
	"hash/crc32"
	"io"
	"math"
	"os"

	"github.com/hupe1980/tilescan/internal/conv"
)

// Read deserializes a reference set from r, returning the feature dimension
// and the row-major point data.
func Read(r io.Reader) (dim int, data []float32, err error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, nil, err
	}

	h, err := DecodeHeader(raw)
	if err != nil {
		return 0, nil, err
	}

	block := raw[HeaderSize:]
	if crc32.Checksum(block, castagnoli) != h.Checksum {
		return 0, nil, ErrChecksum
	}

	body, err := decompressBlock(block, h.Compression)
	if err != nil {
		return 0, nil, err
	}

	dim, err = conv.Uint32ToInt(h.Dim)
	if err != nil {
		return 0, nil, err
	}
	count, err := conv.Uint32ToInt(h.Count)
	if err != nil {
		return 0, nil, err
	}
	if len(body) != count*dim*4 {
		return 0, nil, ErrCorrupt
	}

	data = make([]float32, count*dim)
	for i := range data {
		data[i] = math.Float32frombits(binary.LittleEndian.Uint32(body[i*4:]))
	}
	return dim, data, nil
}

// ReadFile reads a reference set from path.
func ReadFile(path string) (dim int, data []float32, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	return Read(f)
}
