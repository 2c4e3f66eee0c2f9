package lzw

import "fmt"

// Encode compresses data into a sequence of codes using t as the
// initial dictionary. The dictionary grows by one entry alongside every
// emitted code except the last, mirroring the growth a decoder seeded
// from the same table performs, so no dictionary updates appear in the
// output. Every symbol of data must be present in t.
func (t *Table) Encode(data string) ([]uint16, error) {
	if data == "" {
		return nil, nil
	}
	dict := make(map[string]uint16, 2*len(t.symbols))
	for r, code := range t.codes {
		dict[string(r)] = code
	}
	next := len(t.symbols)
	codes := make([]uint16, 0, len(data)/2+1)
	prefix := ""
	for _, r := range data {
		if _, ok := t.codes[r]; !ok {
			return nil, fmt.Errorf("lzw: symbol %q is not in the table: %w", r, ErrFormat)
		}
		candidate := prefix + string(r)
		if _, ok := dict[candidate]; ok {
			prefix = candidate
			continue
		}
		// prefix is nonempty here: every single symbol is in dict, so a
		// miss implies at least two symbols in candidate.
		codes = append(codes, dict[prefix])
		if next > maxCode {
			return nil, fmt.Errorf("lzw: dictionary cannot grow past code %d: %w", maxCode, ErrCodeSpace)
		}
		dict[candidate] = uint16(next)
		next++
		prefix = string(r)
	}
	codes = append(codes, dict[prefix])
	return codes, nil
}
