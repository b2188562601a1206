package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/wordgrams/internal/core/domain"
	"github.com/custodia-labs/wordgrams/internal/core/ports/driven"
	"github.com/custodia-labs/wordgrams/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.SourceReader = (*Reader)(nil)

// Reader reads file and inline text sources.
type Reader struct{}

// New creates a new source reader.
func New() *Reader {
	return &Reader{}
}

// ReadLines returns the non-empty lines of src in order.
func (r *Reader) ReadLines(ctx context.Context, src domain.Source) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch s := src.(type) {
	case domain.FileSource:
		text, err := readFile(s.Path)
		if err != nil {
			return nil, err
		}
		return SplitFileLines(text), nil
	case domain.TextSource:
		return SplitLines(s.Text), nil
	default:
		return nil, fmt.Errorf("%T: %w", src, domain.ErrUnsupportedSource)
	}
}

// readFile reads the whole file as UTF-8 text.
func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	logger.Debug("Read %d bytes from %s", len(data), path)

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, domain.ErrInvalidEncoding)
	}
	return string(data), nil
}

// SplitLines splits inline text on the newline character and drops empty lines.
// Other line terminators such as a trailing carriage return are left on
// the line; tokenization trims them as whitespace.
func SplitLines(text string) []string {
	parts := strings.Split(text, "\n")
	lines := make([]string, 0, len(parts))
	for _, line := range parts {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// SplitFileLines splits file content the way text files are read line by
// line: on \n, \r, \r\n, \v, \f, \x1c-\x1e, U+0085, U+2028 and U+2029.
// Each line keeps its terminator. Lines holding nothing but a terminator
// are dropped.
func SplitFileLines(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		end := i + size
		if !isLineBreak(r) {
			i = end
			continue
		}
		if r == '\r' && end < len(text) && text[end] == '\n' {
			end++
		}
		if i > start {
			lines = append(lines, text[start:end])
		}
		start, i = end, end
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
