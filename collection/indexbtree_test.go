package collection

import (
	"testing"

	"github.com/fulldump/biff"
	"github.com/go-json-experiment/json"
)

func traverse(index Index, reverse bool) []string {
	result := []string{}
	index.Traverse(reverse, func(row *Row) bool {
		result = append(result, string(row.Payload))
		return true
	})
	return result
}

func Test_IndexBTree_HappyPath(t *testing.T) {

	index := NewIndexBTree(&IndexBTreeOptions{
		Fields: []string{"id"},
		Unique: true,
	})

	for i := 0; i < 4; i++ {
		data, _ := json.Marshal(JSON{"id": float64(i)})
		biff.AssertNil(index.AddRow(&Row{Seq: int64(i), Payload: data}))
	}

	biff.AssertEqual(traverse(index, false), []string{`{"id":0}`, `{"id":1}`, `{"id":2}`, `{"id":3}`})
	biff.AssertEqual(traverse(index, true), []string{`{"id":3}`, `{"id":2}`, `{"id":1}`, `{"id":0}`})
}

func Test_IndexBTree_Unique(t *testing.T) {

	index := NewIndexBTree(&IndexBTreeOptions{Fields: []string{"nic"}, Unique: true})

	biff.AssertNil(index.AddRow(&Row{Seq: 1, Payload: []byte(`{"nic":"901234567V"}`)}))
	biff.AssertNotNil(index.AddRow(&Row{Seq: 2, Payload: []byte(`{"nic":"901234567V"}`)}))
	biff.AssertNil(index.AddRow(&Row{Seq: 3, Payload: []byte(`{"nic":"856789012V"}`)}))
}

func Test_IndexBTree_EqualKeysKeepInsertionOrder(t *testing.T) {

	index := NewIndexBTree(&IndexBTreeOptions{Fields: []string{"-status", "name"}})

	rows := []*Row{
		{Seq: 1, Payload: []byte(`{"name":"b","status":"pending"}`)},
		{Seq: 2, Payload: []byte(`{"name":"a","status":"approved"}`)},
		{Seq: 3, Payload: []byte(`{"name":"b","status":"pending"}`)},
		{Seq: 4, Payload: []byte(`{"name":"a","status":"pending"}`)},
	}
	for _, row := range rows {
		biff.AssertNil(index.AddRow(row))
	}

	seqs := []int64{}
	index.Traverse(false, func(row *Row) bool {
		seqs = append(seqs, row.Seq)
		return true
	})
	biff.AssertEqual(seqs, []int64{4, 1, 3, 2})

	biff.AssertNil(index.RemoveRow(rows[0]))
	biff.AssertEqual(index.Btree.Len(), 3)
}

func Test_IndexBTree_MixedTypes(t *testing.T) {

	index := NewIndexBTree(&IndexBTreeOptions{Fields: []string{"v"}})

	index.AddRow(&Row{Seq: 1, Payload: []byte(`{"v":"text"}`)})
	index.AddRow(&Row{Seq: 2, Payload: []byte(`{"v":3}`)})
	index.AddRow(&Row{Seq: 3, Payload: []byte(`{}`)})
	index.AddRow(&Row{Seq: 4, Payload: []byte(`{"v":true}`)})

	biff.AssertEqual(traverse(index, false), []string{`{}`, `{"v":true}`, `{"v":3}`, `{"v":"text"}`})
}

func Test_IndexBTree_Sparse(t *testing.T) {

	index := NewIndexBTree(&IndexBTreeOptions{Fields: []string{"v"}, Sparse: true})

	index.AddRow(&Row{Seq: 1, Payload: []byte(`{}`)})
	index.AddRow(&Row{Seq: 2, Payload: []byte(`{"v":1}`)})

	biff.AssertEqual(traverse(index, false), []string{`{"v":1}`})
}
