package collection

import (
	"fmt"
	"sort"
	"strconv"
)

// IndexMap is a unique key-value index over a single field.
type IndexMap struct {
	Entries map[string]*Row
	Options *IndexMapOptions
}

type IndexMapOptions struct {
	Field  string `json:"field"`
	Sparse bool   `json:"sparse"`
}

func NewIndexMap(options *IndexMapOptions) *IndexMap {
	return &IndexMap{
		Entries: map[string]*Row{},
		Options: options,
	}
}

func (i *IndexMap) GetType() string {
	return IndexTypeMap
}

func (i *IndexMap) GetOptions() interface{} {
	return i.Options
}

func (i *IndexMap) Get(value string) (*Row, bool) {
	row, exists := i.Entries[value]
	return row, exists
}

func (i *IndexMap) AddRow(row *Row) error {

	key, exists, err := i.key(row)
	if err != nil {
		return err
	}
	if !exists {
		if i.Options.Sparse {
			return nil
		}
		return fmt.Errorf("field `%s` is indexed and mandatory", i.Options.Field)
	}

	if _, conflict := i.Entries[key]; conflict {
		return fmt.Errorf("index conflict: field '%s' with value '%s'", i.Options.Field, key)
	}

	i.Entries[key] = row

	return nil
}

func (i *IndexMap) RemoveRow(row *Row) error {

	key, exists, err := i.key(row)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	if i.Entries[key] == row {
		delete(i.Entries, key)
	}

	return nil
}

// Traverse visits the rows sorted by key.
func (i *IndexMap) Traverse(reverse bool, f func(row *Row) bool) {

	keys := make([]string, 0, len(i.Entries))
	for k := range i.Entries {
		keys = append(keys, k)
	}
	if reverse {
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	} else {
		sort.Strings(keys)
	}

	for _, k := range keys {
		if !f(i.Entries[k]) {
			return
		}
	}
}

func (i *IndexMap) key(row *Row) (string, bool, error) {

	item, err := decodeItem(row)
	if err != nil {
		return "", false, err
	}

	value, exists := item[i.Options.Field]
	if !exists || value == nil {
		return "", false, nil
	}

	key, err := NormalizeKey(value)
	if err != nil {
		return "", false, fmt.Errorf("field '%s': %w", i.Options.Field, err)
	}

	return key, true, nil
}

// NormalizeKey turns a decoded JSON scalar into a lookup key, so the number 7
// and the string "7" address the same entry.
func NormalizeKey(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return "", fmt.Errorf("type %T not supported", value)
	}
}
