package database

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/rpupo63/playground-backend/errs"
	"github.com/rpupo63/playground-backend/models"
)

// ProjectRepo stores each project as <dir>/<id>.json.
type ProjectRepo struct {
	dir string
	ids IDGenerator
	now func() time.Time
}

func NewProjectRepo(dir string, ids IDGenerator) (*ProjectRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.NewStorageError("create", "projects directory", err)
	}
	return &ProjectRepo{dir: dir, ids: ids, now: time.Now}, nil
}

// Create allocates a fresh id and writes a new record.
func (r *ProjectRepo) Create(ctx context.Context, src models.Source) (*models.Project, error) {
	id, err := r.ids.GenerateUnique(func(id string) (bool, error) {
		return r.Exists(ctx, id)
	}, 0)
	if err != nil {
		return nil, err
	}
	return r.write(id, src)
}

// Update overwrites the record for id. A missing record is created with
// exactly that id.
func (r *ProjectRepo) Update(ctx context.Context, id string, src models.Source) (*models.Project, error) {
	if err := ValidateProjectID(id); err != nil {
		return nil, err
	}
	return r.write(id, src)
}

// Get returns the stored record for id.
func (r *ProjectRepo) Get(ctx context.Context, id string) (*models.Project, error) {
	if err := ValidateProjectID(id); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return nil, errs.NewNotFound("project")
	}
	if err != nil {
		return nil, errs.NewStorageError("read", "project", err)
	}

	var project models.Project
	if err := json.Unmarshal(raw, &project); err != nil {
		return nil, errs.NewStorageError("decode", "project", err)
	}
	return &project, nil
}

// Exists reports whether a record is stored for id.
func (r *ProjectRepo) Exists(ctx context.Context, id string) (bool, error) {
	if err := ValidateProjectID(id); err != nil {
		return false, err
	}
	_, err := os.Stat(r.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errs.NewStorageError("stat", "project", err)
	}
	return true, nil
}

func (r *ProjectRepo) path(id string) string {
	return filepath.Join(r.dir, id+".json")
}

// write replaces the record in one rename so readers never see a partial file.
func (r *ProjectRepo) write(id string, src models.Source) (*models.Project, error) {
	project := &models.Project{
		ID:        id,
		HTML:      src.HTML,
		CSS:       src.CSS,
		JS:        src.JS,
		UpdatedAt: r.now().UTC(),
	}

	raw, err := json.Marshal(project)
	if err != nil {
		return nil, errs.NewStorageError("encode", "project", err)
	}

	tmp, err := os.CreateTemp(r.dir, "."+id+".*.tmp")
	if err != nil {
		return nil, errs.NewStorageError("write", "project", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return nil, errs.NewStorageError("write", "project", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, errs.NewStorageError("write", "project", err)
	}
	if err := os.Rename(tmp.Name(), r.path(id)); err != nil {
		return nil, errs.NewStorageError("write", "project", err)
	}
	return project, nil
}
