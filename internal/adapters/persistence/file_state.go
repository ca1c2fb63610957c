package persistence

import (
	"context"
	"driver-training-service/internal/platform/obs"
	"driver-training-service/internal/ports"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// StateBackend keeping the record in a single JSON file.
// Writes go to a temp file in the same directory and are renamed into place.
type FileStateBackend struct {
	Path string
}

func NewFileStateBackend(path string) *FileStateBackend {
	return &FileStateBackend{Path: path}
}

func (f *FileStateBackend) Load(ctx context.Context) (_ ports.State, err error) {
	defer obs.Time(ctx, "state.file.Load")(&err)

	b, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return ports.State{}, nil
	}
	if err != nil {
		return ports.State{}, fmt.Errorf("load state file %q: %w", f.Path, err)
	}
	return decodeState(b)
}

func (f *FileStateBackend) Save(ctx context.Context, state ports.State) (err error) {
	defer obs.Time(ctx, "state.file.Save")(&err)

	b, err := encodeState(state)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save state file: create dir %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save state file: create temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("save state file: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save state file: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("save state file: rename into %q: %w", f.Path, err)
	}

	return nil
}
