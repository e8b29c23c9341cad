package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/rpupo63/playground-backend/errs"
)

// AssetRepo keeps each project's assets in <dir>/<projectID>/<filename>.
type AssetRepo struct {
	dir string
}

func NewAssetRepo(dir string) (*AssetRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.NewStorageError("create", "assets directory", err)
	}
	return &AssetRepo{dir: dir}, nil
}

func (r *AssetRepo) List(ctx context.Context, projectID string) ([]string, error) {
	if err := ValidateProjectID(projectID); err != nil {
		return nil, err
	}
	return listFiles(filepath.Join(r.dir, projectID))
}

// Put creates the project scope on first use.
func (r *AssetRepo) Put(ctx context.Context, projectID, filename string, data []byte) error {
	path, err := r.path(projectID, filename)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errs.NewStorageError("create", "asset scope", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errs.NewStorageError("write", "asset", err)
	}
	return nil
}

func (r *AssetRepo) Delete(ctx context.Context, projectID, filename string) error {
	path, err := r.path(projectID, filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errs.NewNotFound("asset")
		}
		return errs.NewStorageError("delete", "asset", err)
	}
	return nil
}

func (r *AssetRepo) Read(ctx context.Context, projectID, filename string) ([]byte, error) {
	path, err := r.path(projectID, filename)
	if err != nil {
		return nil, err
	}
	return readFile(path, "asset")
}

func (r *AssetRepo) path(projectID, filename string) (string, error) {
	if err := ValidateProjectID(projectID); err != nil {
		return "", err
	}
	if err := ValidateFilename(filename); err != nil {
		return "", err
	}
	return filepath.Join(r.dir, projectID, filename), nil
}

// listFiles returns the regular files in dir; a missing dir lists as empty.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, errs.NewStorageError("list", "assets", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func readFile(path, entity string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errs.NewNotFound(entity)
	}
	if err != nil {
		return nil, errs.NewStorageError("read", entity, err)
	}
	return data, nil
}
