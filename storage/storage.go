// Package storage persists generator snapshots so a sequence can be
// resumed across process restarts.
package storage

import (
	"bytes"
	"encoding/gob"
	"errors"
	"path"

	"github.com/Cheeseborgers/quik-math/random"
	"github.com/Cheeseborgers/quik-math/utils"
	"go.etcd.io/bbolt"
)

const DBPath = "db"

var generatorsBucket = []byte("generators")

var ErrGeneratorNotFound = errors.New("storage: generator not found")

// Snapshot is the serialized form of a generator's state.
type Snapshot struct {
	State   uint64
	Stream  uint64
	Counter uint64
}

func GetDBPath() string {
	return path.Join(utils.GetSubFolder(DBPath), "quikmath.db")
}

func GetDB() (*bbolt.DB, error) {
	return Open(GetDBPath())
}

func Open(dbPath string) (*bbolt.DB, error) {
	return bbolt.Open(dbPath, 0600, nil)
}

// SaveGenerator stores the current snapshot of rng under name.
func SaveGenerator(db *bbolt.DB, name string, rng *random.Random) error {
	state, stream, counter := rng.State()
	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(&Snapshot{State: state, Stream: stream, Counter: counter}); err != nil {
		return err
	}
	return db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(generatorsBucket)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(name), buf.Bytes())
	})
}

// LoadGenerator restores rng from the snapshot stored under name.
func LoadGenerator(db *bbolt.DB, name string, rng *random.Random) error {
	var snapshot Snapshot
	err := db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(generatorsBucket)
		if bucket == nil {
			return ErrGeneratorNotFound
		}
		data := bucket.Get([]byte(name))
		if data == nil {
			return ErrGeneratorNotFound
		}
		decoder := gob.NewDecoder(bytes.NewReader(data))
		return decoder.Decode(&snapshot)
	})
	if err != nil {
		return err
	}
	return rng.Restore(snapshot.State, snapshot.Stream, snapshot.Counter)
}

// DeleteGenerator removes a stored snapshot. Deleting a missing name
// is not an error.
func DeleteGenerator(db *bbolt.DB, name string) error {
	return db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(generatorsBucket)
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(name))
	})
}
