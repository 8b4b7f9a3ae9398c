package listfile

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultCharset is the encoding used by the published dumps.
const DefaultCharset = "ISO-8859-1"

// ErrUnknownEncoding is returned for charsets x/text cannot provide.
var ErrUnknownEncoding = errors.New("unknown encoding")

// LookupEncoding resolves an IANA charset name. An empty name selects
// DefaultCharset.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return charmap.ISO8859_1, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: %q is not supported", ErrUnknownEncoding, name)
	}
	return enc, nil
}
