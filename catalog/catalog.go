package catalog

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/watlab/hbnet/stats"
)

var (
	// ErrNotFound indicates no row is stored under the requested cluster ID.
	ErrNotFound = errors.New("catalog: row not found")

	// ErrReadOnly indicates a write to a catalog opened read-only.
	ErrReadOnly = errors.New("catalog: read-only")

	// ErrBadOpts indicates an unusable option combination (e.g. read-only
	// without a path).
	ErrBadOpts = errors.New("catalog: bad options")
)

// rowPrefix namespaces row keys inside the database.
var rowPrefix = []byte("row:")

// Opts configures Open.
type Opts struct {
	// Path is the badger directory. Empty opens an in-memory catalog.
	Path string

	// ReadOnly opens the database for reads only. Requires a Path.
	ReadOnly bool
}

// Catalog wraps a badger database of computed stats.Rows keyed by cluster ID.
type Catalog struct {
	db       *badger.DB
	readOnly bool
}

// Open opens (or creates) a catalog at opts.Path.
func Open(opts Opts) (*Catalog, error) {
	dbOpts := badger.DefaultOptions(opts.Path)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // single-writer usage, skip the bookkeeping
	dbOpts.Logger = nil

	if opts.Path == "" {
		if opts.ReadOnly {
			return nil, errors.Wrap(ErrBadOpts, "read-only catalog needs a path")
		}
		dbOpts.InMemory = true
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: open %q", opts.Path)
	}

	return &Catalog{db: db, readOnly: opts.ReadOnly}, nil
}

// IsReadOnly reports whether this catalog was opened for reads only.
func (c *Catalog) IsReadOnly() bool { return c.readOnly }

// Put stores (or overwrites) the row under its cluster ID.
func (c *Catalog) Put(row stats.Row) error {
	if c.readOnly {
		return errors.Wrapf(ErrReadOnly, "catalog: Put(%q)", row.ID)
	}

	val, err := json.Marshal(row)
	if err != nil {
		return errors.Wrapf(err, "catalog: encoding row %q", row.ID)
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(rowKey(row.ID), val)
	})

	return errors.Wrapf(err, "catalog: Put(%q)", row.ID)
}

// Get returns the row stored under id, or ErrNotFound.
func (c *Catalog) Get(id string) (stats.Row, error) {
	var row stats.Row
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(rowKey(id))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &row)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return stats.Row{}, errors.Wrapf(ErrNotFound, "catalog: Get(%q)", id)
	}
	if err != nil {
		return stats.Row{}, errors.Wrapf(err, "catalog: Get(%q)", id)
	}

	return row, nil
}

// Len counts the stored rows by walking the row keyspace.
func (c *Catalog) Len() (int, error) {
	count := 0
	err := c.db.View(func(txn *badger.Txn) error {
		itOpts := badger.DefaultIteratorOptions
		itOpts.Prefix = rowPrefix
		itOpts.PrefetchValues = false

		it := txn.NewIterator(itOpts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}

		return nil
	})

	return count, errors.Wrap(err, "catalog: Len")
}

// Close flushes and closes the underlying database.
func (c *Catalog) Close() error {
	return errors.Wrap(c.db.Close(), "catalog: close")
}

// rowKey builds the storage key for one cluster ID.
func rowKey(id string) []byte {
	return append(append([]byte(nil), rowPrefix...), id...)
}
