// Package catalog stores named graph snapshots in an embedded BadgerDB.
//
// Each snapshot is the byte image core.Graph.Save produces, kept under the
// key "graph/<name>". Names are listed in ascending byte order.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/graphlib/core"
)

var (
	// ErrNotFound is returned when no snapshot has the requested name.
	ErrNotFound = errors.New("catalog: snapshot not found")
	// ErrEmptyName is returned for an empty snapshot name.
	ErrEmptyName = errors.New("catalog: empty name")
	// ErrNoPath is returned when a persistent catalog has no directory.
	ErrNoPath = errors.New("catalog: path is required")
)

const keyPrefix = "graph/"

// Config selects where the catalog lives.
type Config struct {
	// Path is the database directory; ignored when InMemory is set.
	Path string
	// InMemory keeps everything in RAM. Useful for tests.
	InMemory bool
	// Logger receives BadgerDB diagnostics. Nil silences them.
	Logger *slog.Logger
}

// Entry describes one stored snapshot.
type Entry struct {
	Name string
	Size int64
}

// Catalog is a handle on an open snapshot store. It is safe for concurrent
// use.
type Catalog struct {
	db *badger.DB
}

// badgerLogger adapts slog.Logger to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// Open opens or creates the catalog described by cfg. The caller must Close
// it.
func Open(cfg Config) (*Catalog, error) {
	var opts badger.Options
	switch {
	case cfg.InMemory:
		opts = badger.DefaultOptions("").WithInMemory(true)
	case cfg.Path == "":
		return nil, ErrNoPath
	default:
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("catalog: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("catalog: open: %w", err)
	}

	return &Catalog{db: db}, nil
}

// Close releases the database.
func (c *Catalog) Close() error { return c.db.Close() }

func key(name string) []byte { return []byte(keyPrefix + name) }

// Put stores g under name, replacing any earlier snapshot.
func (c *Catalog) Put(name string, g *core.Graph) error {
	if name == "" {
		return ErrEmptyName
	}
	var buf bytes.Buffer
	if err := g.Save(&buf); err != nil {
		return fmt.Errorf("catalog: encode %q: %w", name, err)
	}

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(name), buf.Bytes())
	})
}

// Get decodes the snapshot stored under name into a new graph built with
// opts.
func (c *Catalog) Get(name string, opts ...core.GraphOption) (*core.Graph, error) {
	var data []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(name))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: read %q: %w", name, err)
	}

	g, err := core.ReadGraph(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("catalog: decode %q: %w", name, err)
	}

	return g, nil
}

// List returns every snapshot in name order.
func (c *Catalog) List() ([]Entry, error) {
	var out []Entry
	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			out = append(out, Entry{
				Name: string(item.Key()[len(keyPrefix):]),
				Size: item.ValueSize(),
			})
		}
		return nil
	})

	return out, err
}

// Delete removes the snapshot stored under name.
func (c *Catalog) Delete(name string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(name)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %q", ErrNotFound, name)
			}
			return err
		}
		return txn.Delete(key(name))
	})
}
