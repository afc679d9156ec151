// ABOUTME: File artifact sink writes the digest JSON to local disk
// ABOUTME: Writes a temp file in the target directory and renames it so readers never see partial output

package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"goatland-feeds/core/domain"
	coreerrors "goatland-feeds/core/errors"
)

// Sink persists artifacts to a single file path
type Sink struct {
	path string
}

// NewSink creates a file sink for path
func NewSink(path string) *Sink {
	return &Sink{path: path}
}

// Target returns the artifact path
func (s *Sink) Target() string {
	return s.path
}

// Write atomically replaces the artifact file
func (s *Sink) Write(ctx context.Context, artifact *domain.Artifact) error {
	if err := ctx.Err(); err != nil {
		return s.fail(err)
	}

	data, err := artifact.Encode()
	if err != nil {
		return s.fail(fmt.Errorf("encode: %w", err))
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return s.fail(err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return s.fail(err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return s.fail(err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return s.fail(err)
	}
	if err := tmp.Close(); err != nil {
		return s.fail(err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return s.fail(err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return s.fail(err)
	}
	committed = true
	return nil
}

func (s *Sink) fail(err error) error {
	return &coreerrors.PersistenceError{Target: s.path, Cause: err}
}
