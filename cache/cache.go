// Package cache keeps finished Match results in a badger key-value store so
// repeated comparisons of the same pair skip refinement.
//
// Keys are derived from the structure only (identity codes and bonds) plus a
// caller-supplied variant naming the run settings that change the output,
// such as the color source or exhaustive refinement. Coordinates do not take
// part: two conformers with identical bonding share an entry.
//
// Only finished results are stored. Colors are run-scoped, so no color
// registry is ever persisted or shared between runs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/atommap/clca"
	"github.com/katalvlaran/atommap/molecule"
)

// ErrClosed indicates use of a Store after Close.
var ErrClosed = errors.New("cache: store is closed")

// keyPrefix namespaces result entries inside the store.
const keyPrefix = "clca/result/"

// Store is a result cache backed by badger. Get, Put and Match may be called
// concurrently; Close may not.
type Store struct {
	db *badger.DB
}

// Open opens the store at path, creating it if needed. An empty path opens
// a store that lives in memory and vanishes on Close.
func Open(path string) (*Store, error) {
	dbOpts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		dbOpts = dbOpts.WithInMemory(true)
	}
	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "cache: open %q", path)
	}
	return &Store{db: db}, nil
}

// Close releases the store.
func (s *Store) Close() error {
	if s.db == nil {
		return ErrClosed
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Key returns the cache key for matching a against b under variant.
// It is the hex sha256 of a canonical text of both structures.
func Key(a, b *molecule.Molecule, variant string) string {
	var sb strings.Builder
	sb.WriteString(variant)
	for _, m := range []*molecule.Molecule{a, b} {
		sb.WriteByte('\n')
		writeCanonical(&sb, m)
	}
	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

// writeCanonical writes "codes;bonds", e.g. "06,08;0-1".
func writeCanonical(sb *strings.Builder, m *molecule.Molecule) {
	sb.WriteString(strings.Join(m.Codes(), ","))
	sb.WriteByte(';')
	for k, bd := range m.Bonds() {
		if k > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(bd[0]))
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(bd[1]))
	}
}

// Get returns the result stored under key. The bool is false on a miss.
func (s *Store) Get(key string) (*clca.Result, bool, error) {
	if s.db == nil {
		return nil, false, ErrClosed
	}

	var res *clca.Result
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			res = new(clca.Result)
			return json.Unmarshal(val, res)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "cache: get %s", key)
	}
	return res, true, nil
}

// Put stores res under key, replacing any previous entry.
func (s *Store) Put(key string, res *clca.Result) error {
	if s.db == nil {
		return ErrClosed
	}
	val, err := json.Marshal(res)
	if err != nil {
		return errors.Wrap(err, "cache: encode result")
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), val)
	})
	return errors.Wrapf(err, "cache: put %s", key)
}

// Match returns the cached result for (a, b, variant) or runs clca.Match and
// stores its result. opts must be the settings variant stands for. The bool
// reports a cache hit.
func (s *Store) Match(a, b *molecule.Molecule, variant string, opts ...clca.Option) (*clca.Result, bool, error) {
	if a == nil || b == nil {
		return nil, false, clca.ErrNilMolecule
	}
	key := Key(a, b, variant)
	res, hit, err := s.Get(key)
	if err != nil {
		return nil, false, err
	}
	if hit {
		klog.V(2).Infof("cache: hit %s", key[:12])
		return res, true, nil
	}

	klog.V(2).Infof("cache: miss %s", key[:12])
	res, err = clca.Match(a, b, opts...)
	if err != nil {
		return nil, false, err
	}
	if err := s.Put(key, res); err != nil {
		return nil, false, err
	}
	return res, false, nil
}
