// Package bbolt implements the ports.Storage interface using bbolt
// (embedded B+ tree). Each project gets its own top-level bucket with
// "docs", "files" and "stats" sub-buckets. Doc keys are "relpath\x00line" so a
// cursor scan comes back ordered by file then line. Writes are
// transactional — a crash mid-write cannot corrupt committed data.
package bbolt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/docwiki/internal/ports"
)

// Sub-bucket names.
var (
	bucketDocs  = []byte("docs")
	bucketFiles = []byte("files")
	bucketStats = []byte("stats")
)

// keyWarnings holds the warning count of the last index run.
var keyWarnings = []byte("warnings")

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// docKey encodes a (file, line) pair as "file\x00line". The NUL separator
// keeps file paths with digits from colliding with line suffixes; the line
// is zero-padded so the cursor scan order is numeric.
func docKey(file string, line int) []byte {
	return []byte(fmt.Sprintf("%s\x00%08d", file, line))
}

// splitDocKey is the inverse of docKey.
func splitDocKey(key []byte) (file string, line int, ok bool) {
	i := bytes.IndexByte(key, 0)
	if i < 0 {
		return "", 0, false
	}
	n, err := strconv.Atoi(string(key[i+1:]))
	if err != nil {
		return "", 0, false
	}
	return string(key[:i]), n, true
}

// filePrefix is the key prefix covering all docs of one file.
func filePrefix(file string) []byte {
	return []byte(file + "\x00")
}

// SaveDocs replaces all stored docs for one file within a project.
func (s *Store) SaveDocs(projectID, file string, recs []ports.DocRecord) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		docs, err := projectSub(tx, projectID, bucketDocs)
		if err != nil {
			return err
		}
		if err := deletePrefix(docs, filePrefix(file)); err != nil {
			return err
		}
		for _, rec := range recs {
			if err := docs.Put(docKey(file, rec.Line), rec.Data); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadDocs returns every stored doc for a project, ordered by file then line.
func (s *Store) LoadDocs(projectID string) ([]ports.DocRecord, error) {
	var recs []ports.DocRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		docs := viewSub(tx, projectID, bucketDocs)
		if docs == nil {
			return nil
		}
		return docs.ForEach(func(k, v []byte) error {
			file, line, ok := splitDocKey(k)
			if !ok {
				return fmt.Errorf("malformed doc key %q", k)
			}
			data := make([]byte, len(v))
			copy(data, v)
			recs = append(recs, ports.DocRecord{File: file, Line: line, Data: data})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// SaveFileMeta records the mtime a file was last indexed at.
func (s *Store) SaveFileMeta(projectID, file string, mtime int64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		files, err := projectSub(tx, projectID, bucketFiles)
		if err != nil {
			return err
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(mtime))
		return files.Put([]byte(file), buf[:])
	})
}

// LoadFileMeta returns the recorded mtimes for all files of a project.
func (s *Store) LoadFileMeta(projectID string) (map[string]int64, error) {
	meta := make(map[string]int64)
	err := s.db.View(func(tx *bolt.Tx) error {
		files := viewSub(tx, projectID, bucketFiles)
		if files == nil {
			return nil
		}
		return files.ForEach(func(k, v []byte) error {
			if len(v) == 8 {
				meta[string(k)] = int64(binary.LittleEndian.Uint64(v))
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return meta, nil
}

// SaveWarningCount records the warning count of the last index run.
func (s *Store) SaveWarningCount(projectID string, n int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		stats, err := projectSub(tx, projectID, bucketStats)
		if err != nil {
			return err
		}
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(n))
		return stats.Put(keyWarnings, buf[:])
	})
}

// LoadWarningCount returns the recorded warning count, 0 for a fresh project.
func (s *Store) LoadWarningCount(projectID string) (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		stats := viewSub(tx, projectID, bucketStats)
		if stats == nil {
			return nil
		}
		if v := stats.Get(keyWarnings); len(v) == 8 {
			n = int(binary.LittleEndian.Uint64(v))
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// DeleteFile removes a file's docs and meta. Idempotent.
func (s *Store) DeleteFile(projectID, file string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		proj := tx.Bucket([]byte(projectID))
		if proj == nil {
			return nil
		}
		if docs := proj.Bucket(bucketDocs); docs != nil {
			if err := deletePrefix(docs, filePrefix(file)); err != nil {
				return err
			}
		}
		if files := proj.Bucket(bucketFiles); files != nil {
			if err := files.Delete([]byte(file)); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteProject removes all data for a project. Idempotent.
func (s *Store) DeleteProject(projectID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(projectID)) == nil {
			return nil
		}
		return tx.DeleteBucket([]byte(projectID))
	})
}

// projectSub returns (creating as needed) a project's sub-bucket.
func projectSub(tx *bolt.Tx, projectID string, sub []byte) (*bolt.Bucket, error) {
	proj, err := tx.CreateBucketIfNotExists([]byte(projectID))
	if err != nil {
		return nil, err
	}
	return proj.CreateBucketIfNotExists(sub)
}

// viewSub returns a project's sub-bucket in a read transaction, or nil.
func viewSub(tx *bolt.Tx, projectID string, sub []byte) *bolt.Bucket {
	proj := tx.Bucket([]byte(projectID))
	if proj == nil {
		return nil
	}
	return proj.Bucket(sub)
}

// deletePrefix removes every key in b starting with prefix.
func deletePrefix(b *bolt.Bucket, prefix []byte) error {
	c := b.Cursor()
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
		if err := c.Delete(); err != nil {
			return err
		}
	}
	return nil
}
