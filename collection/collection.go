package collection

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrIndexNotFound  = errors.New("index not found")
	ErrIndexDuplicate = errors.New("index already exists")
)

// Collection keeps JSON documents in memory, in insertion order.
type Collection struct {
	Name      string
	Rows      []*Row
	rowsMutex *sync.RWMutex
	Indexes   map[string]Index
	seq       int64
}

type Row struct {
	I       int   // position in Rows
	Seq     int64 // insertion sequence, never reused
	Payload jsontext.Value
}

func New(name string) *Collection {
	return &Collection{
		Name:      name,
		Rows:      []*Row{},
		rowsMutex: &sync.RWMutex{},
		Indexes:   map[string]Index{},
	}
}

func (c *Collection) Insert(item interface{}) (*Row, error) {

	payload, err := json.Marshal(item, json.Deterministic(true))
	if err != nil {
		return nil, fmt.Errorf("json encode payload: %w", err)
	}

	return c.InsertPayload(payload)
}

// InsertPayload adds an already encoded JSON object.
func (c *Collection) InsertPayload(payload jsontext.Value) (*Row, error) {

	if kind := payload.Kind(); kind != '{' {
		return nil, fmt.Errorf("payload must be a JSON object, got '%s'", kind)
	}

	c.rowsMutex.Lock()
	defer c.rowsMutex.Unlock()

	c.seq++
	row := &Row{
		I:       len(c.Rows),
		Seq:     c.seq,
		Payload: append(jsontext.Value{}, payload...),
	}

	err := indexInsert(c.Indexes, row)
	if err != nil {
		return nil, err
	}

	c.Rows = append(c.Rows, row)

	return row, nil
}

func (c *Collection) Len() int {
	c.rowsMutex.RLock()
	defer c.rowsMutex.RUnlock()

	return len(c.Rows)
}

// Traverse visits rows in insertion order until f returns false.
func (c *Collection) Traverse(f func(row *Row) bool) {
	c.rowsMutex.RLock()
	defer c.rowsMutex.RUnlock()

	for _, row := range c.Rows {
		if !f(row) {
			return
		}
	}
}

// TraverseIndex visits rows in the order kept by the named index.
func (c *Collection) TraverseIndex(name string, reverse bool, f func(row *Row) bool) error {
	c.rowsMutex.RLock()
	defer c.rowsMutex.RUnlock()

	index, exists := c.Indexes[name]
	if !exists {
		return fmt.Errorf("%w: '%s'", ErrIndexNotFound, name)
	}

	index.Traverse(reverse, f)

	return nil
}

// Index registers a new index and feeds it with the current rows.
func (c *Collection) Index(name string, index Index) error {
	c.rowsMutex.Lock()
	defer c.rowsMutex.Unlock()

	if _, exists := c.Indexes[name]; exists {
		return fmt.Errorf("%w: '%s'", ErrIndexDuplicate, name)
	}

	for _, row := range c.Rows {
		err := index.AddRow(row)
		if err != nil {
			return fmt.Errorf("index row: %w, data: %s", err, string(row.Payload))
		}
	}
	c.Indexes[name] = index

	return nil
}

func (c *Collection) HasIndex(name string) bool {
	c.rowsMutex.RLock()
	defer c.rowsMutex.RUnlock()

	_, exists := c.Indexes[name]
	return exists
}

func (c *Collection) FindByRow(indexName string, value string) (*Row, error) {
	c.rowsMutex.RLock()
	defer c.rowsMutex.RUnlock()

	index, exists := c.Indexes[indexName]
	if !exists {
		return nil, fmt.Errorf("%w: '%s'", ErrIndexNotFound, indexName)
	}

	lookup, ok := index.(*IndexMap)
	if !ok {
		return nil, fmt.Errorf("index '%s' of type '%s' does not support lookups", indexName, index.GetType())
	}

	row, exists := lookup.Get(value)
	if !exists {
		return nil, fmt.Errorf("%s '%s' %w", lookup.Options.Field, value, ErrNotFound)
	}

	return row, nil
}

func (c *Collection) FindBy(indexName string, value string, data interface{}) error {

	row, err := c.FindByRow(indexName, value)
	if err != nil {
		return err
	}

	return json.Unmarshal(row.Payload, data)
}

// Patch merges the top level keys of patch into the row. A nil value removes
// the key.
func (c *Collection) Patch(row *Row, patch map[string]interface{}) error {
	c.rowsMutex.Lock()
	defer c.rowsMutex.Unlock()

	if !c.owns(row) {
		return fmt.Errorf("row %d %w", row.I, ErrNotFound)
	}

	item := map[string]interface{}{}
	err := json.Unmarshal(row.Payload, &item)
	if err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	for k, v := range patch {
		if v == nil {
			delete(item, k)
			continue
		}
		item[k] = v
	}

	newPayload, err := json.Marshal(item, json.Deterministic(true))
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	err = indexRemove(c.Indexes, row)
	if err != nil {
		return fmt.Errorf("indexRemove: %w", err)
	}

	oldPayload := row.Payload
	row.Payload = newPayload

	err = indexInsert(c.Indexes, row)
	if err != nil {
		row.Payload = oldPayload
		indexInsert(c.Indexes, row) // restore, the old payload was already indexed
		return fmt.Errorf("indexInsert: %w", err)
	}

	return nil
}

// Remove deletes the row keeping the order of the remaining ones.
func (c *Collection) Remove(row *Row) error {
	c.rowsMutex.Lock()
	defer c.rowsMutex.Unlock()

	if !c.owns(row) {
		return fmt.Errorf("row %d %w", row.I, ErrNotFound)
	}

	err := indexRemove(c.Indexes, row)
	if err != nil {
		return fmt.Errorf("could not free index: %w", err)
	}

	i := row.I
	c.Rows = append(c.Rows[:i], c.Rows[i+1:]...)
	for j := i; j < len(c.Rows); j++ {
		c.Rows[j].I = j
	}

	return nil
}

func (c *Collection) owns(row *Row) bool {
	return row != nil && row.I >= 0 && row.I < len(c.Rows) && c.Rows[row.I] == row
}

func indexInsert(indexes map[string]Index, row *Row) error {

	added := []Index{}
	for name, index := range indexes {
		err := index.AddRow(row)
		if err != nil {
			for _, a := range added {
				a.RemoveRow(row)
			}
			return fmt.Errorf("index add '%s': %w", name, err)
		}
		added = append(added, index)
	}

	return nil
}

func indexRemove(indexes map[string]Index, row *Row) error {
	for name, index := range indexes {
		err := index.RemoveRow(row)
		if err != nil {
			return fmt.Errorf("index remove '%s': %w", name, err)
		}
	}

	return nil
}

func decodeItem(row *Row) (map[string]interface{}, error) {
	item := map[string]interface{}{}
	err := json.Unmarshal(row.Payload, &item)
	if err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return item, nil
}
