package usgs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/benzi604/earthquakes/internal/domain"
)

// Snapshot persists the feed's native document to disk so later runs can
// reload the same catalog without the network.
type Snapshot struct {
	Path string
}

// Write stores raw feed bytes at the snapshot path, pretty-printed for human
// inspection. The document is re-indented rather than re-marshaled, so fields
// the decoder does not model survive verbatim.
func (s Snapshot) Write(raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "    "); err != nil {
		return fmt.Errorf("indent snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := os.WriteFile(s.Path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Read returns the stored document bytes.
func (s Snapshot) Read() ([]byte, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return raw, nil
}

// Load decodes the stored document through the same path as a live fetch.
func (s Snapshot) Load() (domain.Catalog, error) {
	raw, err := s.Read()
	if err != nil {
		return domain.Catalog{}, err
	}
	return DecodeCatalog(raw)
}
