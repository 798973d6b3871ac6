package storage

import (
	"encoding/json"
	"errors"
	"log"
)

// Collection keys
const (
	KeyBills = "bills"
	KeyStaff = "staff"
)

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a named-collection key-value repository. Values are opaque JSON
// documents; every write replaces the whole collection (single writer,
// last writer wins).
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// Load unmarshals the collection stored under key into out. Missing or
// unparseable data leaves out at whatever default the caller pre-set; the
// condition is logged but never surfaced.
func Load(s Store, key string, out interface{}) {
	data, err := s.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("storage: read %q failed, using default: %v", key, err)
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("storage: %q holds unparseable data, using default: %v", key, err)
	}
}

// Save marshals value and stores it under key, replacing any previous
// collection.
func Save(s Store, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Put(key, data)
}
