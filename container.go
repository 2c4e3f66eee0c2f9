package lzw

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrFormat reports a container that does not follow the layout in
	// the package documentation, or an input the format cannot
	// represent.
	ErrFormat = errors.New("lzw: invalid container")

	// ErrCodeSpace reports an operation that would need to assign a
	// dictionary code beyond the 16-bit range.
	ErrCodeSpace = errors.New("lzw: code space exhausted")

	// ErrUnknownCode reports a payload code with no dictionary entry.
	ErrUnknownCode = errors.New("lzw: unknown code")
)

// Compress encodes data into a self-describing container: the symbol
// table section followed by one little-endian uint16 per payload code.
// data must be valid UTF-8 with at most 255 distinct code points, none
// above U+FFFF.
func Compress(data []byte) ([]byte, error) {
	text := string(data)
	table, err := NewTable(text)
	if err != nil {
		return nil, err
	}
	codes, err := table.Encode(text)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(headerSize + entrySize*table.Len() + codeSize*len(codes))
	if _, err := table.WriteTo(&buf); err != nil {
		return nil, err
	}
	var b [codeSize]byte
	for _, c := range codes {
		binary.LittleEndian.PutUint16(b[:], c)
		buf.Write(b[:])
	}
	return buf.Bytes(), nil
}

// Decompress decodes a container produced by Compress and returns the
// original text.
func Decompress(container []byte) ([]byte, error) {
	r := bytes.NewReader(container)
	var table Table
	if _, err := table.ReadFrom(r); err != nil {
		return nil, err
	}
	if r.Len()%codeSize != 0 {
		return nil, fmt.Errorf("lzw: payload length %d is not a whole number of codes: %w", r.Len(), ErrFormat)
	}
	payload := container[len(container)-r.Len():]
	codes := make([]uint16, 0, len(payload)/codeSize)
	for i := 0; i < len(payload); i += codeSize {
		codes = append(codes, binary.LittleEndian.Uint16(payload[i:]))
	}
	text, err := table.Decode(codes)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}
