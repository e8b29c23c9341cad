package database

import (
	"context"

	"github.com/rpupo63/playground-backend/models"
)

// ProjectStore persists project records. Every write replaces the whole
// record; concurrent writers to the same id race with last-write-wins.
type ProjectStore interface {
	// Create allocates a fresh id and stores a new record under it.
	Create(ctx context.Context, src models.Source) (*models.Project, error)
	// Update overwrites the record for id, creating it when absent.
	Update(ctx context.Context, id string, src models.Source) (*models.Project, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// AssetStore holds the binary files scoped to each project.
type AssetStore interface {
	// List returns the filenames in the project scope in storage order. A
	// scope that was never written lists as empty.
	List(ctx context.Context, projectID string) ([]string, error)
	// Put stores data under filename, replacing any previous file.
	Put(ctx context.Context, projectID, filename string, data []byte) error
	Delete(ctx context.Context, projectID, filename string) error
	Read(ctx context.Context, projectID, filename string) ([]byte, error)
}

// IDGenerator allocates new project ids.
type IDGenerator interface {
	GenerateUnique(exists func(id string) (bool, error), attempts int) (string, error)
}

type Database struct {
	projectRepo  ProjectStore
	assetRepo    AssetStore
	uploadRepo   *UploadRepo
	templateRepo *TemplateRepo
}

// New bundles the stores the playground service works against.
func New(projects ProjectStore, assets AssetStore, uploads *UploadRepo, templates *TemplateRepo) Database {
	return Database{
		projectRepo:  projects,
		assetRepo:    assets,
		uploadRepo:   uploads,
		templateRepo: templates,
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() ProjectStore {
	return d.projectRepo
}

func (d Database) AssetRepo() AssetStore {
	return d.assetRepo
}

func (d Database) UploadRepo() *UploadRepo {
	return d.uploadRepo
}

func (d Database) TemplateRepo() *TemplateRepo {
	return d.templateRepo
}
