package listfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenDecodesLatin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countries.list")
	// "Amélie (2001)\tFrance" with é encoded as a single Latin-1 byte.
	raw := []byte("Am\xe9lie (2001)\tFrance\r\nsecond\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	r, err := Open(path, "")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	var lines []string
	for r.Scan() {
		lines = append(lines, r.Text())
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0] != "Amélie (2001)\tFrance" {
		t.Fatalf("decoded line = %q", lines[0])
	}
	if r.LineNumber() != 2 {
		t.Fatalf("LineNumber = %d, want 2", r.LineNumber())
	}
	if r.Percent() != 100 {
		t.Fatalf("Percent = %v, want 100", r.Percent())
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.list"), "")
	if !errors.Is(err, ErrSourceMissing) {
		t.Fatalf("expected ErrSourceMissing, got %v", err)
	}
}

func TestLookupEncoding(t *testing.T) {
	for _, name := range []string{"ISO-8859-1", "latin1", "UTF-8", "windows-1252"} {
		if _, err := LookupEncoding(name); err != nil {
			t.Errorf("LookupEncoding(%q): %v", name, err)
		}
	}
	if _, err := LookupEncoding("klingon-8"); !errors.Is(err, ErrUnknownEncoding) {
		t.Fatalf("expected ErrUnknownEncoding, got %v", err)
	}
}

func TestNewReaderUnknownSize(t *testing.T) {
	r := NewReader(strings.NewReader("a\nb"), 0, nil)
	count := 0
	for r.Scan() {
		count++
	}
	if count != 2 {
		t.Fatalf("lines = %d, want 2", count)
	}
	if r.Percent() != -1 {
		t.Fatalf("Percent = %v, want -1", r.Percent())
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close on stream reader: %v", err)
	}
}

func TestScanSkipsOverlongLine(t *testing.T) {
	junk := strings.Repeat("x", 2*maxLineBytes)
	input := "Heat (1995)\t1995\n" + junk + "\nAlien (1979)\t1979\n"
	r := NewReader(strings.NewReader(input), int64(len(input)), nil)

	var lines []string
	var overlong []int
	for r.Scan() {
		if r.Overlong() {
			overlong = append(overlong, r.LineNumber())
			if r.Text() != "" {
				t.Fatalf("overlong line should have empty text, got %d bytes", len(r.Text()))
			}
			continue
		}
		lines = append(lines, r.Text())
	}
	if err := r.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if len(overlong) != 1 || overlong[0] != 2 {
		t.Fatalf("overlong lines = %v, want [2]", overlong)
	}
	if len(lines) != 2 || lines[1] != "Alien (1979)\t1979" {
		t.Fatalf("lines after overlong = %q", lines)
	}
	if r.LineNumber() != 3 {
		t.Fatalf("LineNumber = %d, want 3", r.LineNumber())
	}
}

func TestScanKeepsLineAtLimit(t *testing.T) {
	long := strings.Repeat("y", maxLineBytes)
	r := NewReader(strings.NewReader(long+"\r\nlast"), 0, nil)
	if !r.Scan() || r.Overlong() || len(r.Text()) != maxLineBytes {
		t.Fatalf("line at the limit should be kept, overlong=%v len=%d", r.Overlong(), len(r.Text()))
	}
	if !r.Scan() || r.Text() != "last" {
		t.Fatalf("expected trailing line without newline, got %q", r.Text())
	}
	if r.Scan() {
		t.Fatal("expected end of input")
	}
}
