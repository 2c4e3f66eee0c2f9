package lzw

import (
	"fmt"
	"strings"
)

// Decode expands a sequence of codes back into text using t as the
// initial dictionary. The dictionary is grown in lockstep with the
// encoder, one entry per code after the first. A code equal to the next
// unassigned code refers to the entry the encoder defined on the step
// that emitted it; any code beyond that cannot have been produced
// against this table.
func (t *Table) Decode(codes []uint16) (string, error) {
	if len(codes) == 0 {
		return "", nil
	}
	entries := make([]string, 0, len(t.symbols)+len(codes))
	for _, r := range t.symbols {
		entries = append(entries, string(r))
	}
	if int(codes[0]) >= len(entries) {
		return "", fmt.Errorf("lzw: code %d has no dictionary entry: %w", codes[0], ErrUnknownCode)
	}
	prev := entries[codes[0]]
	var out strings.Builder
	out.Grow(2 * len(codes))
	out.WriteString(prev)
	for _, c := range codes[1:] {
		var cur string
		switch {
		case int(c) < len(entries):
			cur = entries[c]
		case int(c) == len(entries):
			cur = prev + firstSymbol(prev)
		default:
			return "", fmt.Errorf("lzw: code %d has no dictionary entry: %w", c, ErrUnknownCode)
		}
		if len(entries) > maxCode {
			return "", fmt.Errorf("lzw: dictionary cannot grow past code %d: %w", maxCode, ErrCodeSpace)
		}
		entries = append(entries, prev+firstSymbol(cur))
		out.WriteString(cur)
		prev = cur
	}
	return out.String(), nil
}
