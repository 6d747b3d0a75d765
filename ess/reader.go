package ess

import (
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadSheet reads sheet text from disk. Sheets are UTF-8 but editors on some
// platforms save them with a byte order mark or as UTF-16 - both are decoded
// transparently.
func ReadSheet(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return io.ReadAll(transform.NewReader(f, dec))
}
