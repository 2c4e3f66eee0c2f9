package lzw

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestNewTableOrder(t *testing.T) {
	tbl, err := NewTable("banana")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	want := []rune{'b', 'a', 'n'}
	got := tbl.Symbols()
	if len(got) != len(want) {
		t.Fatalf("symbols=%q want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("symbols=%q want %q", got, want)
		}
	}
	if tbl.Len() != 3 {
		t.Fatalf("Len=%d want 3", tbl.Len())
	}
}

func TestNewTableEmpty(t *testing.T) {
	tbl, err := NewTable("")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if tbl.Len() != 0 {
		t.Fatalf("Len=%d want 0", tbl.Len())
	}
}

func TestNewTableRejects(t *testing.T) {
	var wide strings.Builder
	for r := rune(0x100); r < 0x200; r++ {
		wide.WriteRune(r)
	}
	cases := []struct {
		name string
		data string
	}{
		{"invalid_utf8", string([]byte{0xff, 0xfe, 'a'})},
		{"beyond_bmp", "a\U0001F642b"},
		{"too_many_symbols", wide.String()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewTable(tc.data); !errors.Is(err, ErrFormat) {
				t.Fatalf("err=%v want ErrFormat", err)
			}
		})
	}
}

func TestTableGolden(t *testing.T) {
	tbl, err := NewTable("aΣ")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	got, err := tbl.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := []byte{0x02, 0x61, 0x00, 0x00, 0xA3, 0x03, 0x01}
	if !bytes.Equal(got, want) {
		t.Fatalf("marshal=% x want % x", got, want)
	}
}

func TestTableRoundtrip(t *testing.T) {
	tbl, err := NewTable("the rain in spain")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	var buf bytes.Buffer
	if _, err := tbl.WriteTo(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	var tbl2 Table
	if _, err := tbl2.ReadFrom(&buf); err != nil {
		t.Fatalf("read: %v", err)
	}
	a, b := tbl.Symbols(), tbl2.Symbols()
	if len(a) != len(b) {
		t.Fatalf("restored %d symbols want %d", len(b), len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("symbol %d: %q want %q", i, b[i], a[i])
		}
	}
	codes, err := tbl.Encode("the rain in spain")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	text, err := tbl2.Decode(codes)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if text != "the rain in spain" {
		t.Fatalf("roundtrip=%q", text)
	}
}

func TestUnmarshalPermutedCodes(t *testing.T) {
	// Entries out of natural order; the embedded codes decide.
	raw := []byte{0x02, 'b', 0x00, 0x01, 'a', 0x00, 0x00}
	var tbl Table
	if err := tbl.UnmarshalBinary(raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := tbl.Symbols()
	if len(got) != 2 || got[0] != 'a' || got[1] != 'b' {
		t.Fatalf("symbols=%q want [a b]", got)
	}
}

func TestUnmarshalTrailingIgnored(t *testing.T) {
	tbl, err := NewTable("ab")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	raw, err := tbl.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	raw = append(raw, 0xAA, 0xBB)
	var tbl2 Table
	if err := tbl2.UnmarshalBinary(raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tbl2.Len() != 2 {
		t.Fatalf("Len=%d want 2", tbl2.Len())
	}
}

func TestReadFromRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  []byte
	}{
		{"empty", nil},
		{"truncated_entries", []byte{0x02, 'a', 0x00, 0x00}},
		{"code_out_of_range", []byte{0x01, 'a', 0x00, 0x01}},
		{"duplicate_code", []byte{0x02, 'a', 0x00, 0x00, 'b', 0x00, 0x00}},
		{"duplicate_symbol", []byte{0x02, 'a', 0x00, 0x00, 'a', 0x00, 0x01}},
		{"surrogate_code_point", []byte{0x01, 0x00, 0xD8, 0x00}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var tbl Table
			if _, err := tbl.ReadFrom(bytes.NewReader(tc.raw)); !errors.Is(err, ErrFormat) {
				t.Fatalf("err=%v want ErrFormat", err)
			}
		})
	}
}
