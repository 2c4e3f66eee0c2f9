// Package lzw implements Lempel-Ziv-Welch compression with a
// self-describing binary container format.
//
// # Overview
//
// LZW replaces repeated substrings with fixed-width 16-bit codes drawn
// from a dictionary that grows as the data is scanned. Unlike classic
// implementations that preset the dictionary with a 256-entry byte
// alphabet, this package builds the initial table from the symbols that
// actually occur in the input, in first-occurrence order, and embeds
// that table in the compressed artifact. Decompression therefore needs
// nothing beyond the artifact itself, and inputs containing symbols
// outside any fixed alphabet (for example non-ASCII characters) compress
// without special casing.
//
// A symbol is one Unicode code point. Input bytes are interpreted as
// UTF-8 and the reconstructed output is byte-for-byte identical to the
// original.
//
// # Container format
//
// All multi-byte fields are little-endian.
//
//	offset 0       1 byte       K, the number of initial table entries
//	offset 1       K x 3 bytes  table entries, in code assignment order:
//	                            2 bytes  symbol code point
//	                            1 byte   assigned code (0..K-1)
//	offset 1+3K    rest         payload: one 16-bit code per 2 bytes
//
// The per-entry code field is a single byte, capping the initial
// alphabet at 255 distinct symbols, while payload codes are two bytes so
// the dictionary can grow to 65536 entries during one operation. The
// asymmetry is part of the format contract.
//
// # Basic Usage
//
//	container, err := lzw.Compress([]byte("to be or not to be"))
//	if err != nil {
//		// input not representable: invalid UTF-8, a code point above
//		// U+FFFF, or more than 255 distinct symbols
//	}
//
//	original, err := lzw.Decompress(container)
//	if err != nil {
//		// malformed container
//	}
//
// The Table type underneath is exported for callers that want the
// pieces: NewTable derives the initial table, Encode and Decode run the
// two sides of the algorithm, and WriteTo/ReadFrom serialize the table
// section of the container.
//
// # Limits
//
// The format fixes limits rather than negotiating them:
//   - at most 255 distinct symbols per input (one-byte header)
//   - symbol code points at most U+FFFF (two-byte entry field)
//   - at most 65536 dictionary entries per operation; growth past that
//     fails with ErrCodeSpace rather than resetting (there is no clear
//     code)
//   - whole input and output are held in memory; there is no streaming
//
// Compression is deterministic: equal inputs produce identical
// containers.
package lzw
