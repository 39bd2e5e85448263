package database

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fulldump/landregistry/collection"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

const SeedExtension = ".jsonl"

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrCollectionExists   = errors.New("collection already exists")
)

type Config struct {
	Seeds fs.FS  // one <collection>.jsonl file per collection
	Dir   string // root of the seeds inside Seeds
}

type Database struct {
	config      *Config
	status      string
	mutex       *sync.RWMutex
	Collections map[string]*collection.Collection
	exit        chan struct{}
	loaded      chan struct{}
	once        *sync.Once
	stop        *sync.Once
}

func NewDatabase(config *Config) *Database {
	s := &Database{
		config:      config,
		status:      StatusOpening,
		mutex:       &sync.RWMutex{},
		Collections: map[string]*collection.Collection{},
		exit:        make(chan struct{}),
		loaded:      make(chan struct{}),
		once:        &sync.Once{},
		stop:        &sync.Once{},
	}

	return s
}

func (db *Database) GetStatus() string {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	return db.status
}

func (db *Database) setStatus(status string) {
	db.mutex.Lock()
	db.status = status
	db.mutex.Unlock()
}

// Loaded is closed once Load finishes, whatever the result.
func (db *Database) Loaded() <-chan struct{} {
	return db.loaded
}

// CreateCollection registers an empty collection with a unique "id" index.
func (db *Database) CreateCollection(name string) (*collection.Collection, error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	if _, exists := db.Collections[name]; exists {
		return nil, fmt.Errorf("%w: '%s'", ErrCollectionExists, name)
	}

	col := collection.New(name)
	err := col.Index("id", collection.NewIndexMap(&collection.IndexMapOptions{
		Field: "id",
	}))
	if err != nil {
		return nil, err
	}

	db.Collections[name] = col

	return col, nil
}

func (db *Database) GetCollection(name string) (*collection.Collection, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	col, exists := db.Collections[name]
	if !exists {
		return nil, fmt.Errorf("%w: '%s'", ErrCollectionNotFound, name)
	}

	return col, nil
}

func (db *Database) ListCollections() []string {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	names := make([]string, 0, len(db.Collections))
	for name := range db.Collections {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (db *Database) DropCollection(name string) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	if _, exists := db.Collections[name]; !exists {
		return fmt.Errorf("%w: '%s'", ErrCollectionNotFound, name)
	}
	delete(db.Collections, name)

	return nil
}

// Load creates one collection per seed file found under the configured Dir.
func (db *Database) Load() error {
	defer db.once.Do(func() { close(db.loaded) })

	dir := db.config.Dir
	if dir == "" {
		dir = "."
	}
	log.Printf("Loading database %s...\n", dir)

	err := fs.WalkDir(db.config.Seeds, dir, func(filename string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(filename) != SeedExtension {
			return nil
		}

		name := strings.TrimSuffix(path.Base(filename), SeedExtension)

		t0 := time.Now()
		col, err := db.CreateCollection(name)
		if err != nil {
			return err
		}

		f, err := db.config.Seeds.Open(filename)
		if err != nil {
			return err
		}
		defer f.Close()

		n, err := col.LoadJSONL(f)
		if err != nil {
			log.Printf("ERROR: load collection '%s': %s\n", filename, err.Error())
			return fmt.Errorf("load collection '%s': %w", name, err)
		}
		log.Println(name, n, time.Since(t0))

		return nil
	})

	if err != nil {
		db.setStatus(StatusClosing)
		return err
	}

	db.setStatus(StatusOperating)

	return nil
}

// Start loads the collections in the background and blocks until Stop.
func (db *Database) Start() error {

	go func() {
		err := db.Load()
		if err != nil {
			log.Println("ERROR:", err.Error())
		}
	}()

	<-db.exit

	return nil
}

func (db *Database) Stop() error {

	db.setStatus(StatusClosing)
	db.stop.Do(func() {
		log.Println("Closing database...")
		close(db.exit)
	})

	return nil
}
