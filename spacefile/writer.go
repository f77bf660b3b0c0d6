package spacefile

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"os"

	"github.com/hupe1980/tilescan/internal/conv"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Write serializes a reference set (count = len(data)/dim points of dim
// floats each, row-major) to w.
func Write(w io.Writer, dim int, data []float32, c Compression) error {
	if dim <= 0 {
		return fmt.Errorf("spacefile: invalid dim %d", dim)
	}
	if len(data)%dim != 0 {
		return fmt.Errorf("spacefile: data length %d is not a multiple of dim %d", len(data), dim)
	}
	if !c.valid() {
		return fmt.Errorf("spacefile: unknown compression type %d", c)
	}

	dim32, err := conv.IntToUint32(dim)
	if err != nil {
		return fmt.Errorf("spacefile: %w", err)
	}
	count32, err := conv.IntToUint32(len(data) / dim)
	if err != nil {
		return fmt.Errorf("spacefile: %w", err)
	}

	body := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(body[i*4:], math.Float32bits(v))
	}

	block, err := compressBlock(body, c)
	if err != nil {
		return err
	}

	h := FileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Dim:         dim32,
		Count:       count32,
		Compression: c,
		Checksum:    crc32.Checksum(block, castagnoli),
	}

	if _, err := w.Write(h.Encode()); err != nil {
		return err
	}
	if _, err := w.Write(block); err != nil {
		return err
	}
	return nil
}

// WriteFile writes a reference set to path, replacing any existing file.
func WriteFile(path string, dim int, data []float32, c Compression) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, dim, data, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
