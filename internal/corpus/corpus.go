// Package corpus loads line-oriented corpora for pattern counting.
//
// A corpus is read fully into memory, transparently decompressed when it
// starts with a gzip or zstd header, and split into lines that alias the
// loaded buffer. Every line is checked against an alphabet Domain before it is
// handed out, so an unexpected byte fails the load instead of reaching the
// encoder.
package corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/axiomhq/patterns"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// File is a corpus stored at Path. It satisfies pipeline.Source.
type File struct {
	Path   string
	Domain patterns.Domain

	// Stdin replaces os.Stdin when Path is Stdin.
	Stdin io.Reader
}

// Load reads and splits the file.
func (f File) Load() ([][]byte, error) {
	if f.Path == Stdin && f.Stdin != nil {
		return Read(f.Stdin, f.Domain)
	}
	return Load(f.Path, f.Domain)
}

// Load reads the corpus at path ("-" for stdin) and returns its lines.
// Open and read failures wrap patterns.ErrInputUnavailable; out-of-domain
// bytes are reported as *patterns.DomainError.
func Load(path string, domain patterns.Domain) ([][]byte, error) {
	if path == Stdin {
		return Read(os.Stdin, domain)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", patterns.ErrInputUnavailable, err)
	}
	defer f.Close()
	adviseSequential(f)
	return Read(f, domain)
}

// Read loads every byte of r, decompressing if needed, and splits it into lines.
func Read(r io.Reader, domain patterns.Domain) ([][]byte, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", patterns.ErrInputUnavailable, err)
	}
	return Split(data, domain)
}

// readAll sniffs the first bytes of r for a compression header.
func readAll(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(magicZstd))
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(head, magicGzip):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case bytes.HasPrefix(head, magicZstd):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer zr.Close()
		return io.ReadAll(zr)
	default:
		return io.ReadAll(br)
	}
}

// Split cuts data into lines. Lines end at '\n'; a "\r\n" terminator loses
// its '\r' as well. Text after the last '\n' is a final line, but a trailing
// '\n' does not start an empty one. The returned lines alias data with their
// capacity clipped to their length.
func Split(data []byte, domain patterns.Domain) ([][]byte, error) {
	lines := make([][]byte, 0, bytes.Count(data, []byte{'\n'})+1)
	for lineNo := 1; len(data) > 0; lineNo++ {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
			if n := len(line); n > 0 && line[n-1] == '\r' {
				line = line[:n-1]
			}
		} else {
			line, data = data, nil
		}
		if col := domain.Check(line); col >= 0 {
			return nil, &patterns.DomainError{
				Domain: domain,
				Line:   lineNo,
				Column: col + 1,
				Byte:   line[col],
			}
		}
		lines = append(lines, line[:len(line):len(line)])
	}
	return lines, nil
}
