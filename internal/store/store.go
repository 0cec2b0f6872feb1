package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ai_calls_platform/backend/internal/models"
)

const (
	MetadataSuffix = ".opus_metadata.json"
	AudioSuffix    = ".opus"

	callKey      = "call"
	spaceCallKey = " "
)

var (
	ErrNotFound = errors.New("recording not found")
	ErrParse    = errors.New("malformed metadata")
)

// Store reads recording metadata documents from a flat directory.
type Store struct {
	Dir string
}

func New(dir string) *Store {
	return &Store{Dir: dir}
}

// Load reads and decodes the metadata document for recordingID. The
// space-key repair is applied, but the document is not validated.
func (s *Store) Load(ctx context.Context, recordingID string) (models.CallMetadata, error) {
	if err := ctx.Err(); err != nil {
		return models.CallMetadata{}, err
	}
	path, err := s.path(recordingID, MetadataSuffix)
	if err != nil {
		return models.CallMetadata{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.CallMetadata{}, ErrNotFound
		}
		return models.CallMetadata{}, fmt.Errorf("read %s: %w", recordingID, err)
	}
	return Decode(data)
}

// Decode parses a raw metadata document. Only input that is not a JSON
// object is an error; individual fields are read leniently.
func Decode(data []byte) (models.CallMetadata, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.CallMetadata{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if raw == nil {
		return models.CallMetadata{}, fmt.Errorf("%w: document is null", ErrParse)
	}
	if RepairCallKey(raw) {
		repaired, err := json.Marshal(raw)
		if err != nil {
			return models.CallMetadata{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
		data = repaired
	}

	md := typedView(raw)
	md.Raw = json.RawMessage(data)
	return md, nil
}

// RepairCallKey handles exports that wrote the "call" object under a single
// space key. It reports whether the document was changed.
func RepairCallKey(raw map[string]json.RawMessage) bool {
	if !isNull(raw[callKey]) {
		return false
	}
	v, ok := raw[spaceCallKey]
	if !ok || isNull(v) {
		return false
	}
	raw[callKey] = v
	delete(raw, spaceCallKey)
	return true
}

func isNull(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) == 0 || bytes.Equal(v, []byte("null"))
}

// RecordingIDs lists every recording with a metadata document, sorted by name.
func (s *Store) RecordingIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read calls dir: %w", err)
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), MetadataSuffix) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), MetadataSuffix))
	}
	sort.Strings(ids)
	return ids, nil
}

// AudioPath returns the path of the recording's audio file if it exists.
func (s *Store) AudioPath(recordingID string) (string, error) {
	path, err := s.path(recordingID, AudioSuffix)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return path, nil
}

func (s *Store) path(recordingID, suffix string) (string, error) {
	if strings.TrimSpace(recordingID) == "" || recordingID == "." || recordingID == ".." || strings.ContainsAny(recordingID, `/\`) {
		return "", ErrNotFound
	}
	return filepath.Join(s.Dir, recordingID+suffix), nil
}
