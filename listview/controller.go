package listview

import (
	"context"
	"fmt"
	"sync"
)

// Source supplies the already loaded records of a view.
type Source[R Record] interface {
	Records() ([]R, error)
}

// Sink receives bulk actions on the selected ids.
type Sink interface {
	Dispatch(ctx context.Context, action string, ids []string) error
}

type SinkFunc func(ctx context.Context, action string, ids []string) error

func (f SinkFunc) Dispatch(ctx context.Context, action string, ids []string) error {
	return f(ctx, action, ids)
}

// State is everything the presentation layer needs to render a view.
type State[R Record] struct {
	View        string      `json:"view"`
	Title       string      `json:"title"`
	Filter      FilterState `json:"filter"`
	Page        Page        `json:"page"`
	Window      []int       `json:"window"`
	From        int         `json:"from"`
	To          int         `json:"to"`
	Total       int         `json:"total"`
	Records     []R         `json:"records"`
	Selected    []string    `json:"selected"`
	AllSelected bool        `json:"all_selected"`
}

type Snapshot = State[Record]

// Controller composes filter, pager and selection for one view. Every
// mutation recomputes the derived state synchronously.
type Controller[R Record] struct {
	mutex     *sync.Mutex
	config    Config
	source    Source[R]
	sink      Sink
	records   []R
	filtered  []R
	filter    FilterState
	page      Page
	selection *Selection
}

func New[R Record](config Config, source Source[R], sink Sink) (*Controller[R], error) {

	config = config.WithDefaults()
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	records, err := source.Records()
	if err != nil {
		return nil, fmt.Errorf("load '%s' records: %w", config.Name, err)
	}

	c := &Controller[R]{
		mutex:     &sync.Mutex{},
		config:    config,
		source:    source,
		sink:      sink,
		records:   records,
		selection: NewSelection(),
	}
	c.filter = NewFilterState(&c.config)
	c.recompute(1)

	return c, nil
}

func (c *Controller[R]) Config() Config {
	return c.config
}

func (c *Controller[R]) SetSearch(text string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.filter.SearchText = text
	c.filterChanged()
}

// SetFilter selects value for a categorical field. All removes the
// constraint.
func (c *Controller[R]) SetFilter(field, value string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.filter.Categorical[field] = value
	c.filterChanged()
}

func (c *Controller[R]) ResetFilters() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.filter = NewFilterState(&c.config)
	c.filterChanged()
}

func (c *Controller[R]) GotoPage(page int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.pageChanged(page)
}

func (c *Controller[R]) NextPage() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.pageChanged(c.page.Next())
}

func (c *Controller[R]) PreviousPage() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.pageChanged(c.page.Previous())
}

// SelectAll acts on the visible page only.
func (c *Controller[R]) SelectAll(checked bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.selection.SelectAll(c.visibleIDs(), checked)
}

// Toggle checks or unchecks one record. Only ids of the visible page can be
// checked, any other id is ignored.
func (c *Controller[R]) Toggle(id string, checked bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if checked && !contains(c.visibleIDs(), id) {
		return
	}

	c.selection.Toggle(id, checked)
}

// Dispatch hands the selected ids to the sink and clears the selection,
// whatever the sink returns.
func (c *Controller[R]) Dispatch(ctx context.Context, action string) ([]string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if !c.config.HasAction(action) {
		return nil, fmt.Errorf("%w '%s' for view '%s'", ErrUnknownAction, action, c.config.Name)
	}

	ids := c.selection.IDs()
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	c.selection.Clear()

	if c.sink == nil {
		return ids, nil
	}

	err := c.sink.Dispatch(ctx, action, ids)
	if err != nil {
		return ids, fmt.Errorf("dispatch '%s': %w", action, err)
	}

	return ids, nil
}

// Reload reads the source again. The current page is kept (clamped) and the
// selection is pruned to the ids still visible.
func (c *Controller[R]) Reload() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	records, err := c.source.Records()
	if err != nil {
		return fmt.Errorf("reload '%s' records: %w", c.config.Name, err)
	}
	c.records = records
	c.recompute(c.page.CurrentPage)
	c.selection.Retain(c.visibleIDs())

	return nil
}

func (c *Controller[R]) State() State[R] {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.state()
}

// Snapshot is State with the records typed as Record, for callers that
// handle several views at once.
func (c *Controller[R]) Snapshot() Snapshot {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	s := c.state()
	records := make([]Record, len(s.Records))
	for i, r := range s.Records {
		records[i] = r
	}

	return Snapshot{
		View:        s.View,
		Title:       s.Title,
		Filter:      s.Filter,
		Page:        s.Page,
		Window:      s.Window,
		From:        s.From,
		To:          s.To,
		Total:       s.Total,
		Records:     records,
		Selected:    s.Selected,
		AllSelected: s.AllSelected,
	}
}

// Filtered returns every record matching the current filters, all pages.
func (c *Controller[R]) Filtered() []R {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return append([]R{}, c.filtered...)
}

// Find looks up a record of the source by id, ignoring filters.
func (c *Controller[R]) Find(id string) (Record, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, r := range c.records {
		if r.RecordID() == id {
			return r, true
		}
	}
	return nil, false
}

func (c *Controller[R]) state() State[R] {

	visible := append([]R{}, c.filtered[c.page.StartIndex:c.page.EndIndex]...)
	page := c.page
	page.PageNumbers = append([]int{}, c.page.PageNumbers...)

	return State[R]{
		View:        c.config.Name,
		Title:       c.config.Title,
		Filter:      c.filter.clone(),
		Page:        page,
		Window:      c.page.Window(c.config.PageWindow),
		From:        c.page.From(),
		To:          c.page.To(),
		Total:       len(c.records),
		Records:     visible,
		Selected:    c.selection.IDs(),
		AllSelected: c.selection.IsAllSelected(c.visibleIDs()),
	}
}

func (c *Controller[R]) filterChanged() {
	c.recompute(1)
	c.selection.Clear()
}

func (c *Controller[R]) pageChanged(page int) {
	previous := c.page.CurrentPage
	c.page = Paginate(len(c.filtered), c.config.PageSize, page)
	if c.page.CurrentPage != previous {
		c.selection.Clear()
	}
}

func (c *Controller[R]) recompute(page int) {
	c.filtered = Filter(c.records, c.filter, &c.config)
	c.page = Paginate(len(c.filtered), c.config.PageSize, page)
}

func (c *Controller[R]) visibleIDs() []string {
	ids := make([]string, 0, c.page.EndIndex-c.page.StartIndex)
	for _, r := range c.filtered[c.page.StartIndex:c.page.EndIndex] {
		ids = append(ids, r.RecordID())
	}
	return ids
}
