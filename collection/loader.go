package collection

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// LoadJSONL inserts every JSON object read from r, one per line. Blank lines
// are skipped. It returns the number of inserted rows.
func (c *Collection) LoadJSONL(r io.Reader) (int, error) {

	decoder := jsontext.NewDecoder(r)

	n := 0
	for {
		value, err := decoder.ReadValue()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, fmt.Errorf("decode json: %w", err)
		}

		_, err = c.InsertPayload(value)
		if err != nil {
			return n, fmt.Errorf("item %d: %w", n+1, err)
		}
		n++
	}

	return n, nil
}
