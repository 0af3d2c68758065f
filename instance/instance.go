// Package instance reads linear programs from files.
//
// Text and YAML files are handled here. Other formats register a reader
// with Register, the way instance/mps does for MPS files.
package instance

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"q.log/tableau/model"
)

// ErrSyntax is returned for malformed input files.
var ErrSyntax = errors.New("instance: syntax error")

// Instance is a problem together with an optional starting basis.
type Instance struct {
	Problem *model.Problem

	// Basis is a suggested initial basis, nil if none is known.
	Basis []int
}

// ReadFunc reads the instance stored at path.
type ReadFunc func(path string) (*Instance, error)

var (
	readersMu sync.RWMutex
	readers   = map[string]ReadFunc{}
)

// Register makes fn the reader for files with extension ext, e.g. ".mps".
func Register(ext string, fn ReadFunc) {
	readersMu.Lock()
	defer readersMu.Unlock()
	readers[strings.ToLower(ext)] = fn
}

// Load reads the instance at path, picking the format from the file
// extension. An empty path yields model.Default.
func Load(path string) (*Instance, error) {
	if path == "" {
		return &Instance{Problem: model.Default()}, nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	readersMu.RLock()
	fn, ok := readers[ext]
	readersMu.RUnlock()
	if ok {
		return fn(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "instance: open")
	}
	defer f.Close()

	var inst *Instance
	switch ext {
	case ".yaml", ".yml":
		inst, err = ReadYAML(f)
	default:
		inst, err = ReadText(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "instance: %s", path)
	}
	return inst, nil
}
