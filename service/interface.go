package service

import (
	"context"
	"errors"
	"io"

	"github.com/fulldump/landregistry/listview"
)

var (
	ErrViewNotFound      = errors.New("view not found")
	ErrRecordNotFound    = errors.New("record not found")
	ErrUnknownRecordKind = errors.New("unknown record kind")
)

type Servicer interface {
	ListViews() ([]*View, error)
	GetView(name string) (*listview.Snapshot, error)
	Search(name, text string) (*listview.Snapshot, error)
	Filter(name, field, value string) (*listview.Snapshot, error)
	ResetFilters(name string) (*listview.Snapshot, error)
	GotoPage(name string, page int) (*listview.Snapshot, error)
	NextPage(name string) (*listview.Snapshot, error)
	PreviousPage(name string) (*listview.Snapshot, error)
	SelectAll(name string, checked bool) (*listview.Snapshot, error)
	Toggle(name, id string, checked bool) (*listview.Snapshot, error)
	Dispatch(ctx context.Context, name, action string) (*Dispatched, error)
	Export(name string, w io.Writer) error
	Summary(name, field string) (map[string]int, error)
	Count(name string, counter listview.Counter) (int, error)
	Counters(name string) (map[string]int, error)
	GetRecord(name, id string) (listview.Record, error)
}

// View describes a list view without its state.
type View struct {
	Name             string                       `json:"name"`
	Title            string                       `json:"title"`
	Record           string                       `json:"record"`
	Total            int                          `json:"total"`
	SearchableFields []string                     `json:"searchable_fields"`
	Filters          []listview.CategoricalFilter `json:"filters"`
	Columns          []string                     `json:"columns"`
	Actions          []string                     `json:"actions"`
	Counters         []listview.Counter           `json:"counters"`
}

type Dispatched struct {
	Action string             `json:"action"`
	IDs    []string           `json:"ids"`
	View   *listview.Snapshot `json:"view"`
}

// Panel is a listview controller with its record type erased.
type Panel interface {
	Config() listview.Config
	SetSearch(text string)
	SetFilter(field, value string)
	ResetFilters()
	GotoPage(page int)
	NextPage()
	PreviousPage()
	SelectAll(checked bool)
	Toggle(id string, checked bool)
	Dispatch(ctx context.Context, action string) ([]string, error)
	Reload() error
	Snapshot() listview.Snapshot
	Export(w io.Writer) error
	Summary(field string) map[string]int
	Count(counter listview.Counter) (int, error)
	Counters() (map[string]int, error)
	Find(id string) (listview.Record, bool)
}
