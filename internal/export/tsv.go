package export

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func lookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("output charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("output charset %q has no encoder", name)
	}
	return enc, nil
}

// tsvSink writes tab-separated lines through a charset encoder. Runes the
// charset cannot represent are replaced rather than failing the export.
type tsvSink struct {
	w *transform.Writer
}

func newTSVSink(w io.Writer, enc encoding.Encoding) *tsvSink {
	encoder := encoding.ReplaceUnsupported(enc.NewEncoder())
	return &tsvSink{w: transform.NewWriter(w, encoder)}
}

func (s *tsvSink) writeRow(fields []string) error {
	if _, err := io.WriteString(s.w, strings.Join(fields, "\t")+"\n"); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}

func (s *tsvSink) close() error {
	return s.w.Close()
}
