// Command lzw compresses and uncompresses files using a fixed-width
// LZW container format. Compressing a file writes <file>.lzw next to
// it; uncompressing strips the suffix. Multiple files are processed
// concurrently, one container per file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hakmad/lzw"
)

const ext = ".lzw"

var (
	compress   = flag.Bool("c", false, "compress the given files")
	uncompress = flag.Bool("u", false, "uncompress the given files")
	verbose    = flag.Bool("v", false, "also report symbol table details")
	quiet      = flag.Bool("q", false, "report nothing but errors")
)

var out = message.NewPrinter(language.English) // commas between thousands

func usage() {
	fmt.Fprintln(os.Stderr, "usage: lzw (-c | -u) [-v | -q] file ...")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if *compress == *uncompress || (*verbose && *quiet) || flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())
	for _, name := range flag.Args() {
		name := name // per-iteration copy; required under go < 1.22
		g.Go(func() error {
			// Skip remaining work once another file has failed.
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if *compress {
				return compressFile(name)
			}
			return uncompressFile(name)
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, "lzw:", err)
		os.Exit(1)
	}
}

func compressFile(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	container, err := lzw.Compress(data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := os.WriteFile(name+ext, container, 0o644); err != nil {
		return err
	}
	if *verbose {
		table, err := lzw.NewTable(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		out.Printf("%s: %d distinct symbols\n", name, table.Len())
	}
	if !*quiet {
		out.Printf("%s: %d bytes in, %d bytes out (%.1f%%)\n",
			name, len(data), len(container), ratio(len(container), len(data)))
	}
	return nil
}

func uncompressFile(name string) error {
	if !strings.HasSuffix(name, ext) {
		return fmt.Errorf("%s: missing %s suffix", name, ext)
	}
	container, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	data, err := lzw.Decompress(container)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := os.WriteFile(strings.TrimSuffix(name, ext), data, 0o644); err != nil {
		return err
	}
	if *verbose {
		var table lzw.Table
		if err := table.UnmarshalBinary(container); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		out.Printf("%s: %d distinct symbols\n", name, table.Len())
	}
	if !*quiet {
		out.Printf("%s: %d bytes in, %d bytes out\n", name, len(container), len(data))
	}
	return nil
}

func ratio(after, before int) float64 {
	if before == 0 {
		return 0
	}
	return 100 * float64(after) / float64(before)
}
