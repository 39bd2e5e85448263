package collection

import (
	"cmp"
	"fmt"
	"math"
	"strings"

	"github.com/google/btree"
)

type IndexBtree struct {
	Btree   *btree.BTreeG[*RowOrdered]
	Options *IndexBTreeOptions
}

type RowOrdered struct {
	*Row
	Values []interface{}
}

// IndexBTreeOptions lists the sort fields. A "-" prefix sorts that field in
// descending order.
type IndexBTreeOptions struct {
	Fields []string `json:"fields"`
	Sparse bool     `json:"sparse"`
	Unique bool     `json:"unique"`
}

func NewIndexBTree(options *IndexBTreeOptions) *IndexBtree {

	descending := make([]bool, len(options.Fields))
	for i, field := range options.Fields {
		descending[i] = strings.HasPrefix(field, "-")
	}

	index := btree.NewG(32, func(a, b *RowOrdered) bool {
		c := compareValues(a.Values, b.Values, descending)
		if c != 0 {
			return c < 0
		}
		return a.seq() < b.seq()
	})

	return &IndexBtree{
		Btree:   index,
		Options: options,
	}
}

func (b *IndexBtree) GetType() string {
	return IndexTypeBtree
}

func (b *IndexBtree) GetOptions() interface{} {
	return b.Options
}

func (b *IndexBtree) AddRow(r *Row) error {

	values, ok, err := b.values(r)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if b.Options.Unique && b.hasKey(values) {
		pairs := []string{}
		for i, field := range b.Options.Fields {
			pairs = append(pairs, fmt.Sprint(field, ":", values[i]))
		}
		return fmt.Errorf("key (%s) already exists", strings.Join(pairs, ","))
	}

	b.Btree.ReplaceOrInsert(&RowOrdered{
		Row:    r,
		Values: values,
	})

	return nil
}

func (b *IndexBtree) RemoveRow(r *Row) error {

	values, ok, err := b.values(r)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	b.Btree.Delete(&RowOrdered{
		Row:    r,
		Values: values,
	})

	return nil
}

func (b *IndexBtree) Traverse(reverse bool, f func(*Row) bool) {

	iterator := func(r *RowOrdered) bool {
		return f(r.Row)
	}

	if reverse {
		b.Btree.Descend(iterator)
	} else {
		b.Btree.Ascend(iterator)
	}
}

func (b *IndexBtree) values(r *Row) ([]interface{}, bool, error) {

	data, err := decodeItem(r)
	if err != nil {
		return nil, false, err
	}

	values := make([]interface{}, 0, len(b.Options.Fields))
	for _, field := range b.Options.Fields {
		field = strings.TrimPrefix(field, "-")
		value, exists := data[field]
		if !exists && b.Options.Sparse {
			return nil, false, nil
		}
		values = append(values, value)
	}

	return values, true, nil
}

func (b *IndexBtree) hasKey(values []interface{}) bool {
	found := false
	pivot := &RowOrdered{Row: &Row{Seq: math.MinInt64}, Values: values}
	b.Btree.AscendGreaterOrEqual(pivot, func(item *RowOrdered) bool {
		found = compareValues(item.Values, values, nil) == 0
		return false
	})
	return found
}

func (r *RowOrdered) seq() int64 {
	if r.Row == nil {
		return 0
	}
	return r.Row.Seq
}

func compareValues(a, b []interface{}, descending []bool) int {
	for i := range a {
		c := compareValue(a[i], b[i])
		if c == 0 {
			continue
		}
		if i < len(descending) && descending[i] {
			return -c
		}
		return c
	}
	return 0
}

// compareValue orders JSON scalars as null < bool < number < string. Values of
// any other kind are compared by their printed form.
func compareValue(a, b interface{}) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch a := a.(type) {
	case nil:
		return 0
	case bool:
		bb := b.(bool)
		if a == bb {
			return 0
		}
		if !a {
			return -1
		}
		return 1
	case float64:
		return cmp.Compare(a, b.(float64))
	case string:
		return cmp.Compare(a, b.(string))
	}

	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func rank(v interface{}) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case float64:
		return 2
	case string:
		return 3
	}
	return 4
}
