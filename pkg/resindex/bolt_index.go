package resindex

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"

	"github.com/stackb/resname/pkg/resname"
)

var resourcesBucket = []byte("resources")

type BoltOption func(*BoltIndex) *BoltIndex

// WithReadOnly opens the database read-only.  Put fails on a read-only
// index.
func WithReadOnly() BoltOption {
	return func(ix *BoltIndex) *BoltIndex {
		ix.options.ReadOnly = true
		return ix
	}
}

// WithOpenTimeout bounds the time spent waiting for the database file lock.
func WithOpenTimeout(timeout time.Duration) BoltOption {
	return func(ix *BoltIndex) *BoltIndex {
		ix.options.Timeout = timeout
		return ix
	}
}

// WithBoltLogger sets the logger that reports read errors.
func WithBoltLogger(logger zerolog.Logger) BoltOption {
	return func(ix *BoltIndex) *BoltIndex {
		ix.logger = logger
		return ix
	}
}

var defaultBoltOptions = []BoltOption{
	WithOpenTimeout(time.Second),
}

// BoltIndex implements resname.ResourceIndex on a bbolt database.  Keys are
// fully-qualified names and values are big-endian uint32 identifiers, so,
// as for TrieIndex, only names their fully-qualified form identifies are
// accepted.
type BoltIndex struct {
	db      *bolt.DB
	options bolt.Options
	logger  zerolog.Logger
}

// OpenBoltIndex opens (or creates) the index database at the given path.
func OpenBoltIndex(path string, options ...BoltOption) (*BoltIndex, error) {
	ix := &BoltIndex{logger: zerolog.Nop()}
	for _, opt := range append(defaultBoltOptions, options...) {
		ix = opt(ix)
	}

	db, err := bolt.Open(path, 0o644, &ix.options)
	if err != nil {
		return nil, fmt.Errorf("open bolt index %q: %w", path, err)
	}
	ix.db = db

	if !ix.options.ReadOnly {
		if err := db.Update(func(tx *bolt.Tx) error {
			_, err := tx.CreateBucketIfNotExists(resourcesBucket)
			return err
		}); err != nil {
			db.Close()
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return ix, nil
}

// Close releases the database.
func (ix *BoltIndex) Close() error {
	return ix.db.Close()
}

// ResourceID implements the resname.ResourceIndex interface.
func (ix *BoltIndex) ResourceID(name resname.Name) (id int, ok bool) {
	if checkCanonical(name) != nil {
		return 0, false
	}
	if err := ix.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(resourcesBucket)
		if b == nil {
			return nil
		}
		value := b.Get([]byte(name.FullyQualifiedName()))
		if value == nil {
			return nil
		}
		if len(value) != 4 {
			return fmt.Errorf("%s: bad value length %d", name, len(value))
		}
		id, ok = int(binary.BigEndian.Uint32(value)), true
		return nil
	}); err != nil {
		ix.logger.Warn().Err(err).Str("name", name.FullyQualifiedName()).Msg("bolt index read failed")
		return 0, false
	}
	return
}

// Put implements the Putter interface.
func (ix *BoltIndex) Put(name resname.Name, id int) error {
	return ix.PutAll([]Entry{{Name: name, ID: id}})
}

// PutAll registers all entries in a single transaction.  Nothing is written
// if any entry conflicts with an existing one.
func (ix *BoltIndex) PutAll(entries []Entry) error {
	return ix.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(resourcesBucket)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := checkCanonical(entry.Name); err != nil {
				return err
			}
			key := []byte(entry.Name.FullyQualifiedName())
			if existing := b.Get(key); existing != nil {
				if len(existing) != 4 {
					return fmt.Errorf("%s: bad value length %d", entry.Name, len(existing))
				}
				if prev := int(binary.BigEndian.Uint32(existing)); prev != entry.ID {
					return &DuplicateNameError{Name: entry.Name, Existing: prev, ID: entry.ID}
				}
				continue
			}
			value := make([]byte, 4)
			binary.BigEndian.PutUint32(value, uint32(entry.ID))
			if err := b.Put(key, value); err != nil {
				return fmt.Errorf("put %s: %w", entry.Name, err)
			}
		}
		return nil
	})
}

// Entries implements the Lister interface.  Keys that are not valid
// fully-qualified names are skipped.
func (ix *BoltIndex) Entries() []Entry {
	var entries []Entry
	if err := ix.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(resourcesBucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			name, err := resname.Parse(string(k))
			if err != nil || len(v) != 4 {
				ix.logger.Debug().Bytes("key", k).Msg("skipping bolt index key")
				return nil
			}
			entries = append(entries, Entry{Name: name, ID: int(binary.BigEndian.Uint32(v))})
			return nil
		})
	}); err != nil {
		ix.logger.Warn().Err(err).Msg("bolt index scan failed")
	}
	return entries
}
