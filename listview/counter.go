package listview

import (
	"errors"
	"fmt"

	"github.com/SierraSoftworks/connor"
)

var ErrInvalidCounter = errors.New("invalid counter")

// Condition keeps the records whose field is one of In and none of NotIn.
type Condition struct {
	Field string   `json:"field" toml:"field"`
	In    []string `json:"in,omitempty" toml:"in"`
	NotIn []string `json:"not_in,omitempty" toml:"not_in"`
}

// Counter is a dashboard figure over every record of a view, whatever the
// current filters. It counts the records matching all the conditions or, when
// Distinct is set, the different values of that field among them.
type Counter struct {
	Name     string      `json:"name" toml:"name"`
	Where    []Condition `json:"where" toml:"where"`
	Distinct string      `json:"distinct,omitempty" toml:"distinct"`
}

func (c *Counter) Validate() error {
	for _, condition := range c.Where {
		if condition.Field == "" {
			return fmt.Errorf("%w '%s': condition without field", ErrInvalidCounter, c.Name)
		}
		if len(condition.In) == 0 && len(condition.NotIn) == 0 {
			return fmt.Errorf("%w '%s': condition on '%s' needs in or not_in", ErrInvalidCounter, c.Name, condition.Field)
		}
	}
	return nil
}

func (c *Counter) conditions() (map[string]interface{}, []string) {

	all := []interface{}{}
	fields := []string{}
	for _, condition := range c.Where {
		operators := map[string]interface{}{}
		if len(condition.In) > 0 {
			operators["$in"] = toInterfaces(condition.In)
		}
		if len(condition.NotIn) > 0 {
			operators["$nin"] = toInterfaces(condition.NotIn)
		}
		all = append(all, map[string]interface{}{condition.Field: operators})
		fields = append(fields, condition.Field)
	}

	return map[string]interface{}{"$and": all}, fields
}

// CountWhere evaluates counter over records.
func CountWhere[R Record](records []R, counter Counter) (int, error) {

	err := counter.Validate()
	if err != nil {
		return 0, err
	}

	conditions, fields := counter.conditions()
	distinct := map[string]struct{}{}
	total := 0

	for _, r := range records {
		values := r.Fields()

		data := make(map[string]interface{}, len(fields))
		for _, field := range fields {
			if value, exists := values[field]; exists {
				data[field] = FormatValue(value)
			}
		}

		match, err := connor.Match(conditions, data)
		if err != nil {
			return 0, fmt.Errorf("%w '%s': %s", ErrInvalidCounter, counter.Name, err.Error())
		}
		if !match {
			continue
		}

		if counter.Distinct == "" {
			total++
			continue
		}
		if value, exists := values[counter.Distinct]; exists {
			distinct[FormatValue(value)] = struct{}{}
		}
	}

	if counter.Distinct != "" {
		return len(distinct), nil
	}

	return total, nil
}

func (c *Controller[R]) Count(counter Counter) (int, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return CountWhere(c.records, counter)
}

// Counters evaluates every counter configured for the view.
func (c *Controller[R]) Counters() (map[string]int, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	result := make(map[string]int, len(c.config.Counters))
	for _, counter := range c.config.Counters {
		n, err := CountWhere(c.records, counter)
		if err != nil {
			return nil, err
		}
		result[counter.Name] = n
	}

	return result, nil
}

func toInterfaces(values []string) []interface{} {
	result := make([]interface{}, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}
