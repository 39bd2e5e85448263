package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/fulldump/landregistry/collection"
	"github.com/fulldump/landregistry/database"
	"github.com/fulldump/landregistry/listview"
	"github.com/fulldump/landregistry/registry"
)

// Service keeps one panel per configured view. Panels are built on first use,
// once the database has loaded the collections.
type Service struct {
	db       *database.Database
	views    []listview.Config
	reviewer *registry.Reviewer
	mutex    *sync.Mutex
	panels   map[string]Panel
}

func NewService(db *database.Database, views []listview.Config, reviewer *registry.Reviewer) *Service {
	return &Service{
		db:       db,
		views:    views,
		reviewer: reviewer,
		mutex:    &sync.Mutex{},
		panels:   map[string]Panel{},
	}
}

func (s *Service) ListViews() ([]*View, error) {

	result := []*View{}
	for _, config := range s.views {
		p, err := s.panel(config.Name)
		if err != nil {
			return nil, err
		}
		config = p.Config()
		result = append(result, &View{
			Name:             config.Name,
			Title:            config.Title,
			Record:           config.Record,
			Total:            p.Snapshot().Total,
			SearchableFields: nonNil(config.SearchableFields),
			Filters:          nonNil(config.CategoricalFilters),
			Columns:          nonNil(config.Columns),
			Actions:          nonNil(config.Actions),
			Counters:         nonNil(config.Counters),
		})
	}

	return result, nil
}

func (s *Service) GetView(name string) (*listview.Snapshot, error) {
	return s.do(name, func(p Panel) {})
}

func (s *Service) Search(name, text string) (*listview.Snapshot, error) {
	return s.do(name, func(p Panel) {
		p.SetSearch(text)
	})
}

func (s *Service) Filter(name, field, value string) (*listview.Snapshot, error) {
	return s.do(name, func(p Panel) {
		p.SetFilter(field, value)
	})
}

func (s *Service) ResetFilters(name string) (*listview.Snapshot, error) {
	return s.do(name, Panel.ResetFilters)
}

func (s *Service) GotoPage(name string, page int) (*listview.Snapshot, error) {
	return s.do(name, func(p Panel) {
		p.GotoPage(page)
	})
}

func (s *Service) NextPage(name string) (*listview.Snapshot, error) {
	return s.do(name, Panel.NextPage)
}

func (s *Service) PreviousPage(name string) (*listview.Snapshot, error) {
	return s.do(name, Panel.PreviousPage)
}

func (s *Service) SelectAll(name string, checked bool) (*listview.Snapshot, error) {
	return s.do(name, func(p Panel) {
		p.SelectAll(checked)
	})
}

func (s *Service) Toggle(name, id string, checked bool) (*listview.Snapshot, error) {
	return s.do(name, func(p Panel) {
		p.Toggle(id, checked)
	})
}

// Dispatch applies the action to the selection of the view. Every built
// panel is reloaded afterwards, the action may have touched other views (the
// audit log at least).
func (s *Service) Dispatch(ctx context.Context, name, action string) (*Dispatched, error) {

	p, err := s.panel(name)
	if err != nil {
		return nil, err
	}

	ids, dispatchErr := p.Dispatch(ctx, action)
	if len(ids) == 0 {
		return nil, dispatchErr
	}

	reloadErr := s.reloadAll()

	snapshot := p.Snapshot()
	result := &Dispatched{
		Action: action,
		IDs:    ids,
		View:   &snapshot,
	}

	return result, errors.Join(dispatchErr, reloadErr)
}

func (s *Service) Export(name string, w io.Writer) error {

	p, err := s.panel(name)
	if err != nil {
		return err
	}

	return p.Export(w)
}

func (s *Service) Summary(name, field string) (map[string]int, error) {

	p, err := s.panel(name)
	if err != nil {
		return nil, err
	}

	return p.Summary(field), nil
}

func (s *Service) Count(name string, counter listview.Counter) (int, error) {

	p, err := s.panel(name)
	if err != nil {
		return 0, err
	}

	return p.Count(counter)
}

// Counters evaluates the dashboard counters configured for the view.
func (s *Service) Counters(name string) (map[string]int, error) {

	p, err := s.panel(name)
	if err != nil {
		return nil, err
	}

	return p.Counters()
}

func (s *Service) GetRecord(name, id string) (listview.Record, error) {

	p, err := s.panel(name)
	if err != nil {
		return nil, err
	}

	record, found := p.Find(id)
	if !found {
		return nil, fmt.Errorf("%w: '%s' in view '%s'", ErrRecordNotFound, id, name)
	}

	return record, nil
}

func (s *Service) do(name string, f func(p Panel)) (*listview.Snapshot, error) {

	p, err := s.panel(name)
	if err != nil {
		return nil, err
	}

	f(p)
	snapshot := p.Snapshot()

	return &snapshot, nil
}

func (s *Service) reloadAll() error {
	s.mutex.Lock()
	panels := make([]Panel, 0, len(s.panels))
	for _, p := range s.panels {
		panels = append(panels, p)
	}
	s.mutex.Unlock()

	errs := []error{}
	for _, p := range panels {
		err := p.Reload()
		if err != nil {
			log.Println("ERROR:", err.Error())
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (s *Service) panel(name string) (Panel, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if p, exists := s.panels[name]; exists {
		return p, nil
	}

	for _, config := range s.views {
		if config.Name != name {
			continue
		}
		p, err := s.build(config.WithDefaults())
		if err != nil {
			return nil, fmt.Errorf("build view '%s': %w", name, err)
		}
		s.panels[name] = p
		return p, nil
	}

	return nil, fmt.Errorf("%w: '%s'", ErrViewNotFound, name)
}

func (s *Service) build(config listview.Config) (Panel, error) {

	col, err := s.db.GetCollection(config.Collection)
	if err != nil {
		return nil, err
	}

	sortIndex := ""
	if len(config.SortBy) > 0 {
		sortIndex = "sort:" + config.Name
		if !col.HasIndex(sortIndex) {
			err := col.Index(sortIndex, collection.NewIndexBTree(&collection.IndexBTreeOptions{
				Fields: config.SortBy,
			}))
			if err != nil {
				return nil, err
			}
		}
	}

	var sink listview.Sink
	if _, exists := registry.Transitions[config.Record]; exists && s.reviewer != nil {
		sink = s.reviewer.Sink(config.Record, config.Collection)
	}

	switch config.Record {
	case registry.KindApplication:
		return newPanel[registry.Application](config, col, sortIndex, sink)
	case registry.KindDocument:
		return newPanel[registry.Document](config, col, sortIndex, sink)
	case registry.KindAppointment:
		return newPanel[registry.Appointment](config, col, sortIndex, sink)
	case registry.KindAudit:
		return newPanel[registry.AuditLogEntry](config, col, sortIndex, sink)
	case registry.KindNotification:
		return newPanel[registry.Notification](config, col, sortIndex, sink)
	case registry.KindUser:
		return newPanel[registry.User](config, col, sortIndex, sink)
	case registry.KindActivity:
		return newPanel[registry.Activity](config, col, sortIndex, sink)
	}

	return nil, fmt.Errorf("%w: '%s'", ErrUnknownRecordKind, config.Record)
}

func newPanel[R registry.Entity](config listview.Config, col *collection.Collection, sortIndex string, sink listview.Sink) (Panel, error) {
	c, err := listview.New[R](config, registry.NewTable[R](col, sortIndex), sink)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
