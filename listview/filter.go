package listview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SierraSoftworks/connor"
	"golang.org/x/text/cases"
)

// Record is one row of a list view. Fields exposes the named scalar values
// used by search and categorical filters.
type Record interface {
	RecordID() string
	Fields() map[string]any
}

type FilterState struct {
	SearchText  string            `json:"search_text"`
	Categorical map[string]string `json:"categorical"`
}

// NewFilterState returns the state of a freshly mounted view: no search and
// every categorical filter set to All.
func NewFilterState(config *Config) FilterState {
	state := FilterState{
		Categorical: map[string]string{},
	}
	for _, filter := range config.CategoricalFilters {
		state.Categorical[filter.Field] = All
	}
	return state
}

func (f FilterState) clone() FilterState {
	result := FilterState{
		SearchText:  f.SearchText,
		Categorical: make(map[string]string, len(f.Categorical)),
	}
	for k, v := range f.Categorical {
		result.Categorical[k] = v
	}
	return result
}

// Matches reports whether record passes the text search and every
// categorical filter in state.
func Matches(record Record, state FilterState, config *Config) bool {
	return newMatcher(state, config).match(record)
}

// Filter keeps the records matching state, preserving their order.
func Filter[R Record](records []R, state FilterState, config *Config) []R {

	m := newMatcher(state, config)

	result := make([]R, 0, len(records))
	for _, record := range records {
		if m.match(record) {
			result = append(result, record)
		}
	}

	return result
}

type matcher struct {
	config     *Config
	needle     string
	fold       cases.Caser
	conditions map[string]interface{}
	invalid    bool
}

func newMatcher(state FilterState, config *Config) *matcher {

	m := &matcher{
		config:     config,
		fold:       cases.Fold(),
		conditions: map[string]interface{}{},
	}
	if state.SearchText != "" {
		m.needle = m.fold.String(state.SearchText)
	}

	for field, value := range state.Categorical {
		if value == "" || value == All {
			continue
		}
		filter := config.categorical(field)
		if filter == nil {
			m.invalid = true
			continue
		}
		if len(filter.Options) > 0 && !contains(filter.Options, value) {
			m.invalid = true
			continue
		}
		m.conditions[field] = value
	}

	return m
}

func (m *matcher) match(record Record) bool {

	if m.invalid {
		return false
	}

	fields := record.Fields()

	return m.matchText(fields) && m.matchCategorical(fields)
}

func (m *matcher) matchText(fields map[string]any) bool {

	if m.needle == "" {
		return true
	}

	for _, field := range m.config.SearchableFields {
		value, exists := fields[field]
		if !exists {
			continue
		}
		if strings.Contains(m.fold.String(FormatValue(value)), m.needle) {
			return true
		}
	}

	return false
}

func (m *matcher) matchCategorical(fields map[string]any) bool {

	if len(m.conditions) == 0 {
		return true
	}

	data := make(map[string]interface{}, len(m.conditions))
	for field := range m.conditions {
		value, exists := fields[field]
		if !exists {
			return false
		}
		data[field] = FormatValue(value)
	}

	match, err := connor.Match(m.conditions, data)
	if err != nil {
		return false
	}

	return match
}

// FormatValue renders a scalar field the way it is compared and exported.
func FormatValue(value any) string {

	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
