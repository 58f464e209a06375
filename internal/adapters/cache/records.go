package cache

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/zerr"
)

// versionRecord is one entry of versions.json.
type versionRecord struct {
	InterpreterVersion string    `json:"interpreter_version"`
	ToolVersion        string    `json:"tool_version"`
	Timestamp          time.Time `json:"timestamp"`
	Input              string    `json:"input"`
}

func (r versionRecord) stamp() time.Time { return r.Timestamp }

// discoveryRecord is one entry of discovery.bin.
type discoveryRecord struct {
	Timestamp time.Time
	Input     string
	Result    domain.DiscoveryResult
}

func (r discoveryRecord) stamp() time.Time { return r.Timestamp }

type record interface {
	stamp() time.Time
}

type codec interface {
	encode(v any) ([]byte, error)
	decode(data []byte, v any) error
}

type jsonCodec struct{}

func (jsonCodec) encode(v any) ([]byte, error)    { return json.MarshalIndent(v, "", "  ") }
func (jsonCodec) decode(data []byte, v any) error { return json.Unmarshal(data, v) }

type gobCodec struct{}

func (gobCodec) encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (gobCodec) decode(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// readSet loads a record set. A missing or empty file is an empty set.
func readSet[T record](path string, c codec) (map[string]T, error) {
	//nolint:gosec // Path is constructed from the configured cache directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]T{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}
	if len(data) == 0 {
		return map[string]T{}, nil
	}

	set := make(map[string]T)
	if err := c.decode(data, &set); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDecodeFailed.Error()), "path", path)
	}
	return set, nil
}

// mergeSet performs the read-modify-write of a single key. An unreadable
// existing file is replaced rather than merged.
func mergeSet[T record](dir, path string, c codec, key string, rec T) error {
	set, err := readSet[T](path, c)
	if err != nil {
		set = map[string]T{}
	}
	set[key] = rec
	return writeSet(dir, path, c, set)
}

// expireSet drops entries older than d and rewrites the file when anything changed.
func expireSet[T record](dir, path string, c codec, d time.Duration, now time.Time) (int, error) {
	set, err := readSet[T](path, c)
	if err != nil {
		return 0, err
	}
	before := len(set)
	maps.DeleteFunc(set, func(_ string, rec T) bool {
		return expired(rec.stamp(), d, now)
	})
	removed := before - len(set)
	if removed == 0 {
		return 0, nil
	}
	if err := writeSet(dir, path, c, set); err != nil {
		return 0, err
	}
	return removed, nil
}

func writeSet[T record](dir, path string, c codec, set map[string]T) error {
	data, err := c.encode(set)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheEncodeFailed.Error()), "path", path)
	}
	return atomicWriteFile(dir, path, data)
}

// atomicWriteFile writes data to a temp file in dir and renames it over path.
func atomicWriteFile(dir, path string, data []byte) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "dir", dir)
	}

	tmpFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", path)
	}
	return nil
}
