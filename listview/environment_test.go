package listview

import (
	"context"
	"errors"
	"fmt"
)

type testRecord struct {
	ID     string
	Name   string
	NIC    string
	Status string
	Score  int
}

func (r testRecord) RecordID() string {
	return r.ID
}

func (r testRecord) Fields() map[string]any {
	return map[string]any{
		"id":     r.ID,
		"name":   r.Name,
		"nic":    r.NIC,
		"status": r.Status,
		"score":  r.Score,
	}
}

type testSource struct {
	records []testRecord
	err     error
}

func (s *testSource) Records() ([]testRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]testRecord{}, s.records...), nil
}

type dispatched struct {
	Action string
	IDs    []string
}

type testSink struct {
	calls []dispatched
	err   error
}

func (s *testSink) Dispatch(ctx context.Context, action string, ids []string) error {
	s.calls = append(s.calls, dispatched{Action: action, IDs: ids})
	return s.err
}

var errSinkDown = errors.New("sink down")

func testConfig() Config {
	return Config{
		Name:             "applications",
		SearchableFields: []string{"name", "id", "nic"},
		CategoricalFilters: []CategoricalFilter{
			{Field: "status", Options: []string{"pending", "approved", "rejected", "under_review"}},
		},
		PageSize: 10,
		Actions:  []string{"approve", "reject"},
	}
}

func fiveRecords() []testRecord {
	return []testRecord{
		{ID: "APP001", Name: "John Doe", NIC: "123456789V", Status: "pending", Score: 85},
		{ID: "APP002", Name: "Jane Smith", NIC: "987654321V", Status: "approved", Score: 92},
		{ID: "APP003", Name: "Mike Johnson", NIC: "456789123V", Status: "rejected", Score: 45},
		{ID: "APP004", Name: "Sarah Wilson", NIC: "789123456V", Status: "pending", Score: 78},
		{ID: "APP005", Name: "David Brown", NIC: "321654987V", Status: "approved", Score: 88},
	}
}

func manyRecords(n int) []testRecord {
	result := make([]testRecord, n)
	for i := range result {
		result[i] = testRecord{
			ID:     fmt.Sprintf("APP%03d", i+1),
			Name:   fmt.Sprintf("Applicant %d", i+1),
			Status: "pending",
		}
	}
	return result
}

func ids(records []testRecord) []string {
	result := []string{}
	for _, r := range records {
		result = append(result, r.ID)
	}
	return result
}
