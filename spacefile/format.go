package spacefile

import (
	"encoding/binary"
	"errors"
)

const (
	MagicNumber = 0x53504331 // "SPC1"
	Version     = 1
)

var (
	ErrInvalidMagic   = errors.New("spacefile: invalid magic number")
	ErrInvalidVersion = errors.New("spacefile: unsupported version")
	ErrChecksum       = errors.New("spacefile: checksum mismatch")
	ErrCorrupt        = errors.New("spacefile: corrupt file")
)

// Compression defines the block compression algorithm used for point data.
type Compression uint8

const (
	// CompressionNone stores point data uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, good for hot data).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio, good for cold data).
	CompressionZSTD Compression = 2
)

func (c Compression) valid() bool {
	return c <= CompressionZSTD
}

// FileHeader describes the layout of a space file.
// It is stored at the beginning of the file.
type FileHeader struct {
	Magic       uint32
	Version     uint32
	Dim         uint32
	Count       uint32 // Number of points
	Compression Compression
	_           [3]byte // Padding
	Checksum    uint32  // CRC32C of the body (everything after header)
}

// HeaderSize is the size of the encoded header in bytes.
const HeaderSize = 4 + 4 + 4 + 4 + 1 + 3 + 4

// Encode serializes the header into a fixed-size byte slice.
func (h *FileHeader) Encode() []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:], h.Magic)
	binary.LittleEndian.PutUint32(buf[4:], h.Version)
	binary.LittleEndian.PutUint32(buf[8:], h.Dim)
	binary.LittleEndian.PutUint32(buf[12:], h.Count)
	buf[16] = byte(h.Compression)
	// Padding [17:20]
	binary.LittleEndian.PutUint32(buf[20:], h.Checksum)
	return buf
}

// DecodeHeader parses and validates a header from buf.
func DecodeHeader(buf []byte) (FileHeader, error) {
	var h FileHeader
	if len(buf) < HeaderSize {
		return h, ErrCorrupt
	}

	h.Magic = binary.LittleEndian.Uint32(buf[0:])
	h.Version = binary.LittleEndian.Uint32(buf[4:])
	h.Dim = binary.LittleEndian.Uint32(buf[8:])
	h.Count = binary.LittleEndian.Uint32(buf[12:])
	h.Compression = Compression(buf[16])
	h.Checksum = binary.LittleEndian.Uint32(buf[20:])

	if h.Magic != MagicNumber {
		return h, ErrInvalidMagic
	}
	if h.Version != Version {
		return h, ErrInvalidVersion
	}
	if !h.Compression.valid() {
		return h, ErrCorrupt
	}
	return h, nil
}
