package visgraph

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/kushrm2803/visgraph/obstacle"
	"github.com/kushrm2803/visgraph/options"
)

// saveFile is the on-disk shape written by Save and read by Load: the
// obstacle graph and its derived visibility graph, persisted together so a
// Load never has to rebuild one from the other.
type saveFile struct {
	Obstacles *obstacle.Graph
	Visible   *obstacle.Graph
}

// Save writes the engine's obstacle graph and visibility graph to path as a
// single opaque gob-encoded blob.
func (e *Engine) Save(path string) error {
	if e.obstacles == nil || e.visible == nil {
		return ErrNotBuilt
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(saveFile{Obstacles: e.obstacles, Visible: e.visible}); err != nil {
		return fmt.Errorf("%w: encode: %v", ErrIOFailure, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIOFailure, path, err)
	}
	return nil
}

// Load reads an engine previously written by Save and returns it as a new
// Engine.
func Load(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrIOFailure, path, err)
	}

	var sf saveFile
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&sf); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrIOFailure, path, err)
	}

	// The persisted graphs carry no tolerance state of their own — tolerance
	// only matters while building — so a loaded engine falls back to the
	// defaults for any further on-the-fly visibility queries (an
	// origin/destination not already present as a graph vertex). Custom
	// geometry options given to Build are not restored by Load.
	return &Engine{obstacles: sf.Obstacles, visible: sf.Visible, opts: options.DefaultGeometryOptions()}, nil
}
