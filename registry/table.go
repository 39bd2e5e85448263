package registry

import (
	"fmt"

	"github.com/go-json-experiment/json"

	"github.com/fulldump/landregistry/collection"
)

// Table reads the rows of a collection as typed records. When SortIndex names
// an index the rows come in its order, otherwise in insertion order.
type Table[R Entity] struct {
	Collection *collection.Collection
	SortIndex  string
}

func NewTable[R Entity](c *collection.Collection, sortIndex string) *Table[R] {
	return &Table[R]{
		Collection: c,
		SortIndex:  sortIndex,
	}
}

func (t *Table[R]) Records() ([]R, error) {

	records := []R{}
	var decodeErr error

	visit := func(row *collection.Row) bool {
		record, err := Decode[R](row.Payload)
		if err != nil {
			decodeErr = fmt.Errorf("collection '%s' row %d: %w", t.Collection.Name, row.I, err)
			return false
		}
		records = append(records, record)
		return true
	}

	if t.SortIndex == "" {
		t.Collection.Traverse(visit)
	} else {
		err := t.Collection.TraverseIndex(t.SortIndex, false, visit)
		if err != nil {
			return nil, err
		}
	}

	if decodeErr != nil {
		return nil, decodeErr
	}

	return records, nil
}

// Decode parses a single record, rejecting unknown members, and validates it.
func Decode[R Entity](data []byte) (R, error) {
	var record R
	err := json.Unmarshal(data, &record, json.RejectUnknownMembers(true))
	if err != nil {
		return record, fmt.Errorf("decode: %w", err)
	}
	err = record.Validate()
	if err != nil {
		return record, err
	}
	return record, nil
}
