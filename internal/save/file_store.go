package save

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/osse101/Bouquet_Go/internal/domain"
	"github.com/osse101/Bouquet_Go/internal/repository"
)

const (
	fileExtension  = ".json"
	dirPermission  = 0755
	filePermission = 0644
)

var slotPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// FileStore keeps one JSON file per save slot in a directory
type FileStore struct {
	dir string
	now func() time.Time
}

var _ repository.Garden = (*FileStore)(nil)

// NewFileStore creates the directory if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, dirPermission); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &FileStore{dir: dir, now: time.Now}, nil
}

func (s *FileStore) path(slot string) (string, error) {
	if !slotPattern.MatchString(slot) {
		return "", fmt.Errorf("%w: save slot %q", domain.ErrInvalidInput, slot)
	}
	return filepath.Join(s.dir, slot+fileExtension), nil
}

// LoadGarden implements repository.Garden
func (s *FileStore) LoadGarden(_ context.Context, slot string) (*domain.GardenState, error) {
	path, err := s.path(slot)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}
	return Decode(data)
}

// SaveGarden implements repository.Garden. The file is replaced atomically so a crash
// mid-write leaves the previous save intact.
func (s *FileStore) SaveGarden(_ context.Context, slot string, state *domain.GardenState) error {
	path, err := s.path(slot)
	if err != nil {
		return err
	}
	data, err := Encode(state, s.now())
	if err != nil {
		return err
	}

	return writeAtomic(path, data)
}

// writeAtomic replaces path through a temp file in the same directory
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := os.Chmod(tmp.Name(), filePermission); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ListSaves implements repository.Garden
func (s *FileStore) ListSaves(_ context.Context) ([]repository.SaveInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	var out []repository.SaveInfo
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fileExtension) {
			continue
		}
		slot := strings.TrimSuffix(name, fileExtension)
		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			continue
		}
		state, err := Decode(data)
		if err != nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, repository.SaveInfo{Slot: slot, Day: state.Day, UpdatedAt: info.ModTime()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}
