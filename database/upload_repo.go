package database

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rpupo63/playground-backend/errs"
)

// UploadRepo is the flat area that receives assets extracted from imported
// archives before any project id exists for them.
type UploadRepo struct {
	dir string
}

func NewUploadRepo(dir string) (*UploadRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.NewStorageError("create", "uploads directory", err)
	}
	return &UploadRepo{dir: dir}, nil
}

// Put stores data under filename, replacing any earlier upload of that name.
func (r *UploadRepo) Put(ctx context.Context, filename string, data []byte) error {
	if err := ValidateFilename(filename); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(r.dir, filename), data, 0o644); err != nil {
		return errs.NewStorageError("write", "upload", err)
	}
	return nil
}

func (r *UploadRepo) List(ctx context.Context) ([]string, error) {
	return listFiles(r.dir)
}

func (r *UploadRepo) Read(ctx context.Context, filename string) ([]byte, error) {
	if err := ValidateFilename(filename); err != nil {
		return nil, err
	}
	return readFile(filepath.Join(r.dir, filename), "upload")
}
