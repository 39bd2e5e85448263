package listview

import (
	"errors"
	"fmt"
)

// All is the categorical sentinel meaning "do not constrain this field".
const All = "all"

const (
	DefaultPageSize   = 10
	DefaultPageWindow = 5
)

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrEmptySelection = errors.New("empty selection")
	ErrInvalidConfig  = errors.New("invalid view config")
)

type CategoricalFilter struct {
	Field   string   `json:"field" toml:"field"`
	Options []string `json:"options" toml:"options"`
}

// Config describes one list view: which fields are searched, which ones can
// be filtered by value and how the result is paged.
type Config struct {
	Name               string              `json:"name" toml:"name"`
	Title              string              `json:"title" toml:"title"`
	Collection         string              `json:"collection" toml:"collection"`
	Record             string              `json:"record" toml:"record"`
	SearchableFields   []string            `json:"searchable_fields" toml:"searchable_fields"`
	CategoricalFilters []CategoricalFilter `json:"categorical_filters" toml:"filters"`
	PageSize           int                 `json:"page_size" toml:"page_size"`
	PageWindow         int                 `json:"page_window" toml:"page_window"`
	SortBy             []string            `json:"sort_by,omitempty" toml:"sort_by"`
	Columns            []string            `json:"columns,omitempty" toml:"columns"`
	Actions            []string            `json:"actions,omitempty" toml:"actions"`
	Counters           []Counter           `json:"counters,omitempty" toml:"counters"`
}

func (c *Config) Validate() error {

	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConfig)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("%w: view '%s' page size must be >= 1, got %d", ErrInvalidConfig, c.Name, c.PageSize)
	}

	seen := map[string]bool{}
	for _, filter := range c.CategoricalFilters {
		if filter.Field == "" {
			return fmt.Errorf("%w: view '%s' has a filter without field", ErrInvalidConfig, c.Name)
		}
		if seen[filter.Field] {
			return fmt.Errorf("%w: view '%s' filter '%s' is duplicated", ErrInvalidConfig, c.Name, filter.Field)
		}
		seen[filter.Field] = true
	}

	names := map[string]bool{}
	for _, counter := range c.Counters {
		if counter.Name == "" {
			return fmt.Errorf("%w: view '%s' has a counter without name", ErrInvalidConfig, c.Name)
		}
		if names[counter.Name] {
			return fmt.Errorf("%w: view '%s' counter '%s' is duplicated", ErrInvalidConfig, c.Name, counter.Name)
		}
		names[counter.Name] = true
		err := counter.Validate()
		if err != nil {
			return fmt.Errorf("%w: view '%s': %w", ErrInvalidConfig, c.Name, err)
		}
	}

	return nil
}

// WithDefaults fills the optional values left empty in a view definition.
func (c Config) WithDefaults() Config {
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.PageWindow == 0 {
		c.PageWindow = DefaultPageWindow
	}
	if c.Collection == "" {
		c.Collection = c.Name
	}
	return c
}

func (c *Config) categorical(field string) *CategoricalFilter {
	for i := range c.CategoricalFilters {
		if c.CategoricalFilters[i].Field == field {
			return &c.CategoricalFilters[i]
		}
	}
	return nil
}

func (c *Config) HasAction(action string) bool {
	for _, a := range c.Actions {
		if a == action {
			return true
		}
	}
	return false
}
