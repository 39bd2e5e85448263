package configuration

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/fulldump/landregistry/listview"
)

//go:embed views.toml
var DefaultViews []byte

type Views struct {
	Views []listview.Config `toml:"views"`
}

// LoadViews reads the view definitions from filename, or the embedded ones
// when filename is empty.
func LoadViews(filename string) ([]listview.Config, error) {

	data := DefaultViews
	if filename != "" {
		var err error
		data, err = os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("read views: %w", err)
		}
	}

	return ParseViews(data)
}

func ParseViews(data []byte) ([]listview.Config, error) {

	views := Views{}
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&views)
	if err != nil {
		return nil, fmt.Errorf("decode views: %w", err)
	}

	seen := map[string]bool{}
	result := make([]listview.Config, 0, len(views.Views))
	for _, view := range views.Views {
		view = view.WithDefaults()
		err := view.Validate()
		if err != nil {
			return nil, err
		}
		if seen[view.Name] {
			return nil, fmt.Errorf("%w: view '%s' is duplicated", listview.ErrInvalidConfig, view.Name)
		}
		seen[view.Name] = true
		result = append(result, view)
	}

	return result, nil
}
