package registry

import (
	"fmt"
	"time"

	"github.com/fulldump/landregistry/collection"
)

type testCollections map[string]*collection.Collection

func (t testCollections) GetCollection(name string) (*collection.Collection, error) {
	c, exists := t[name]
	if !exists {
		return nil, fmt.Errorf("collection '%s' not found", name)
	}
	return c, nil
}

// loadSeeds opens the embedded seeds of the given collections.
func loadSeeds(names ...string) testCollections {
	result := testCollections{}
	for _, name := range names {
		f, err := Seeds.Open("seeds/" + name + ".jsonl")
		if err != nil {
			panic(err)
		}
		c := collection.New(name)
		err = c.Index("id", collection.NewIndexMap(&collection.IndexMapOptions{Field: "id"}))
		if err != nil {
			panic(err)
		}
		_, err = c.LoadJSONL(f)
		f.Close()
		if err != nil {
			panic(err)
		}
		result[name] = c
	}
	return result
}

func fixedNow() time.Time {
	return time.Date(2024, 1, 16, 8, 30, 0, 0, time.UTC)
}
