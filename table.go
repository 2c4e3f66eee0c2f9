package lzw

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"
)

// Table is the initial symbol table for a single compress or decompress
// operation: a bidirectional mapping between the distinct symbols of an
// input and their assigned codes. Codes are assigned from zero in
// first-occurrence order, so building a Table from the same input always
// yields the same assignment. Multi-symbol strings discovered while
// encoding or decoding live in private dictionaries seeded from the
// Table; the Table itself never changes after construction, which is
// what lets the serialized form describe only the initial state.
type Table struct {
	symbols []rune          // code -> symbol, in assignment order
	codes   map[rune]uint16 // symbol -> code
}

// NewTable builds the initial table for data: one entry per distinct
// symbol, codes assigned in first-occurrence order. It fails if data is
// not valid UTF-8, contains a symbol above U+FFFF, or holds more
// distinct symbols than the container header can declare.
func NewTable(data string) (*Table, error) {
	if !utf8.ValidString(data) {
		return nil, fmt.Errorf("lzw: input is not valid UTF-8: %w", ErrFormat)
	}
	t := &Table{codes: make(map[rune]uint16)}
	for _, r := range data {
		if _, ok := t.codes[r]; ok {
			continue
		}
		if r > maxCodePoint {
			return nil, fmt.Errorf("lzw: symbol %q is beyond the two-byte code point range: %w", r, ErrFormat)
		}
		if len(t.symbols) == maxSymbols {
			return nil, fmt.Errorf("lzw: more than %d distinct symbols: %w", maxSymbols, ErrFormat)
		}
		t.codes[r] = uint16(len(t.symbols))
		t.symbols = append(t.symbols, r)
	}
	return t, nil
}

// Len returns the number of table entries.
func (t *Table) Len() int { return len(t.symbols) }

// Symbols returns the table's symbols in code assignment order.
func (t *Table) Symbols() []rune {
	out := make([]rune, len(t.symbols))
	copy(out, t.symbols)
	return out
}

// WriteTo serializes the table section of a container to w.
// Layout:
//   - 1 byte entry count K
//   - per entry, in assignment order: 2 bytes little-endian symbol code
//     point, then 1 byte assigned code
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, headerSize+entrySize*len(t.symbols))
	buf = append(buf, byte(len(t.symbols)))
	for code, sym := range t.symbols {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(sym))
		buf = append(buf, byte(code))
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// ReadFrom deserializes a table section from r, replacing the receiver.
// The embedded per-entry codes are honored and validated: they must form
// a permutation of [0, K), every code point must be a valid symbol, and
// no symbol may appear under two codes.
func (t *Table) ReadFrom(r io.Reader) (int64, error) {
	var n int64
	var hdr [headerSize]byte
	nn, err := io.ReadFull(r, hdr[:])
	n += int64(nn)
	if err != nil {
		return n, fmt.Errorf("lzw: truncated header: %w", ErrFormat)
	}
	k := int(hdr[0])
	symbols := make([]rune, k)
	codes := make(map[rune]uint16, k)
	taken := make([]bool, k)
	var entry [entrySize]byte
	for i := 0; i < k; i++ {
		nn, err := io.ReadFull(r, entry[:])
		n += int64(nn)
		if err != nil {
			return n, fmt.Errorf("lzw: table truncated after %d of %d entries: %w", i, k, ErrFormat)
		}
		cp := binary.LittleEndian.Uint16(entry[:2])
		code := int(entry[2])
		switch {
		case code >= k:
			return n, fmt.Errorf("lzw: entry code %d outside [0,%d): %w", code, k, ErrFormat)
		case taken[code]:
			return n, fmt.Errorf("lzw: entry code %d assigned twice: %w", code, ErrFormat)
		case !validSymbol(rune(cp)):
			return n, fmt.Errorf("lzw: entry code point %#04x is not a symbol: %w", cp, ErrFormat)
		}
		if _, ok := codes[rune(cp)]; ok {
			return n, fmt.Errorf("lzw: symbol %q appears under two codes: %w", rune(cp), ErrFormat)
		}
		taken[code] = true
		symbols[code] = rune(cp)
		codes[rune(cp)] = uint16(code)
	}
	t.symbols = symbols
	t.codes = codes
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (t *Table) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := t.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Bytes past the
// table section are ignored.
func (t *Table) UnmarshalBinary(data []byte) error {
	_, err := t.ReadFrom(bytes.NewReader(data))
	return err
}
