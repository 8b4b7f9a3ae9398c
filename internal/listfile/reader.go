package listfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrSourceMissing is returned by Open when the dump does not exist.
var ErrSourceMissing = errors.New("source not found")

// maxLineBytes bounds the decoded length of one line, not counting its line
// ending. Longer lines are consumed and reported through Overlong instead of
// being buffered.
const maxLineBytes = 1 << 20

// Reader yields decoded lines from a dump.
type Reader struct {
	path     string
	size     int64
	counter  *countingReader
	br       *bufio.Reader
	closer   io.Closer
	buf      []byte
	line     string
	lineNo   int
	overlong bool
	done     bool
	err      error
}

// Open opens path and decodes it with the named charset. A missing file is
// reported as ErrSourceMissing so callers can skip the category.
func Open(path, charset string) (*Reader, error) {
	enc, err := LookupEncoding(charset)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return nil, fmt.Errorf("stat source: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceMissing, path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	r := NewReader(file, info.Size(), enc)
	r.path = path
	r.closer = file
	return r, nil
}

// NewReader wraps an arbitrary stream. size is used only for progress and
// may be zero. A nil enc passes bytes through unchanged.
func NewReader(src io.Reader, size int64, enc encoding.Encoding) *Reader {
	counter := &countingReader{r: src}
	var decoded io.Reader = counter
	if enc != nil {
		decoded = transform.NewReader(counter, enc.NewDecoder())
	}
	return &Reader{size: size, counter: counter, br: bufio.NewReaderSize(decoded, 64*1024)}
}

// Scan advances to the next line. A line longer than maxLineBytes is still
// a line: Text is empty and Overlong reports true.
func (r *Reader) Scan() bool {
	if r.done {
		return false
	}
	r.buf = r.buf[:0]
	r.overlong = false
	read := 0
	for {
		chunk, err := r.br.ReadSlice('\n')
		read += len(chunk)
		if !r.overlong {
			if len(r.buf)+len(chunk) > maxLineBytes+len("\r\n") {
				r.overlong = true
				r.buf = r.buf[:0]
			} else {
				r.buf = append(r.buf, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil {
			r.done = true
			if !errors.Is(err, io.EOF) {
				r.err = err
				return false
			}
			if read == 0 {
				return false
			}
		}
		break
	}
	line := strings.TrimSuffix(string(r.buf), "\n")
	r.line = strings.TrimSuffix(line, "\r")
	r.lineNo++
	return true
}

// Text returns the current line without its line ending.
func (r *Reader) Text() string { return r.line }

// Overlong reports whether the current line exceeded maxLineBytes and was
// discarded.
func (r *Reader) Overlong() bool { return r.overlong }

// LineNumber returns the 1-based number of the current line.
func (r *Reader) LineNumber() int { return r.lineNo }

// Err returns the first read error, if any.
func (r *Reader) Err() error {
	if r.err != nil {
		return fmt.Errorf("read %s line %d: %w", r.label(), r.lineNo+1, r.err)
	}
	return nil
}

// Percent reports how much of the raw input has been consumed, or -1 when
// the size is unknown.
func (r *Reader) Percent() float64 {
	if r.size <= 0 {
		return -1
	}
	pct := float64(r.counter.n) / float64(r.size) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Path returns the file path for readers created by Open.
func (r *Reader) Path() string { return r.path }

// Close releases the underlying file.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

func (r *Reader) label() string {
	if r.path == "" {
		return "input"
	}
	return r.path
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
