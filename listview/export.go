package listview

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fulldump/landregistry/utils"
)

// Count groups records by the formatted value of field. Records without the
// field are not counted.
func Count[R Record](records []R, field string) map[string]int {
	result := map[string]int{}
	for _, r := range records {
		value, exists := r.Fields()[field]
		if !exists {
			continue
		}
		result[FormatValue(value)]++
	}
	return result
}

// WriteCSV writes a header row with columns followed by one row per record.
// When columns is empty, every field of the first record is used, sorted.
func WriteCSV[R Record](w io.Writer, records []R, columns []string) error {

	if len(columns) == 0 && len(records) > 0 {
		columns = utils.GetKeys(records[0].Fields())
	}

	out := csv.NewWriter(w)

	err := out.Write(columns)
	if err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	line := make([]string, len(columns))
	for _, r := range records {
		fields := r.Fields()
		for i, column := range columns {
			line[i] = FormatValue(fields[column])
		}
		err := out.Write(line)
		if err != nil {
			return fmt.Errorf("write csv row '%s': %w", r.RecordID(), err)
		}
	}

	out.Flush()
	return out.Error()
}

func (c *Controller[R]) Summary(field string) map[string]int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return Count(c.records, field)
}

// Export writes the filtered list, every page, as CSV.
func (c *Controller[R]) Export(w io.Writer) error {
	c.mutex.Lock()
	filtered := append([]R{}, c.filtered...)
	columns := c.config.Columns
	c.mutex.Unlock()

	return WriteCSV(w, filtered, columns)
}
