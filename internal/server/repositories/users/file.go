package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/borbinha27/prova-3bim/internal/common"
	"github.com/borbinha27/prova-3bim/internal/filex"
	"github.com/borbinha27/prova-3bim/internal/server/models"
)

// FileRepository persists the whole user collection as one JSON array in a
// single file. Every operation reads the file fresh and every mutation
// writes the full array back; there is no in-memory cache across calls.
// A single mutex serializes each load-modify-save cycle so concurrent
// requests cannot interleave partial writes.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

// NewFileRepository opens a repository backed by the file at path, creating
// the parent directory when needed. The file itself is created lazily on
// the first mutation.
func NewFileRepository(path string) (*FileRepository, error) {
	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}
	return &FileRepository{path: path}, nil
}

// load reads the persisted collection. A missing or empty file means an
// empty collection; unparseable content means common.ErrCorruptStore.
func (r *FileRepository) load() ([]models.User, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.path, err)
	}
	if len(data) == 0 {
		return []models.User{}, nil
	}

	var list []models.User
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrCorruptStore, r.path, err)
	}
	return list, nil
}

// save overwrites the persisted collection. The array is written to a
// temporary file in the store's directory and renamed over it, so a crash
// mid-write cannot leave a half-written store behind.
func (r *FileRepository) save(list []models.User) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp store: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing temp store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp store: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}

func (r *FileRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *FileRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			u := list[i]
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

// FindByNameEmail returns the first record matching both nome and email.
func (r *FileRepository) FindByNameEmail(ctx context.Context, nome, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Nome == nome && list[i].Email == email {
			u := list[i]
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

// Create assigns the next id and appends the record. The next id comes
// from the last element of the array, not the maximum: gaps left by
// deletions are never refilled, and a collection [1,3] yields 4.
func (r *FileRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return nil, err
	}

	var nextID int64 = 1
	if len(list) > 0 {
		nextID = list[len(list)-1].ID + 1
	}
	user.ID = nextID

	list = append(list, *user)
	if err := r.save(list); err != nil {
		return nil, err
	}
	return user, nil
}

// Update replaces the record whose id matches user.ID.
func (r *FileRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == user.ID {
			list[i] = *user
			if err := r.save(list); err != nil {
				return nil, err
			}
			return user, nil
		}
	}
	return nil, common.ErrorNotFound
}

// Delete removes the record with the given id and returns it.
func (r *FileRepository) Delete(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			removed := list[i]
			list = append(list[:i], list[i+1:]...)
			if err := r.save(list); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, common.ErrorNotFound
}
