package database

import (
	"context"
	"errors"
	"time"

	"github.com/rpupo63/playground-backend/errs"
	"github.com/rpupo63/playground-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepo stores projects in the projects table.
type GormProjectRepo struct {
	db  *gorm.DB
	ids IDGenerator
	now func() time.Time
}

func NewGormProjectRepo(db *gorm.DB, ids IDGenerator) *GormProjectRepo {
	return &GormProjectRepo{db: db, ids: ids, now: time.Now}
}

func (r *GormProjectRepo) Create(ctx context.Context, src models.Source) (*models.Project, error) {
	id, err := r.ids.GenerateUnique(func(id string) (bool, error) {
		return r.Exists(ctx, id)
	}, 0)
	if err != nil {
		return nil, err
	}

	project := r.record(id, src)
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, errs.NewDatabaseError("create", "project", err)
	}
	return project, nil
}

// Update upserts the full record.
func (r *GormProjectRepo) Update(ctx context.Context, id string, src models.Source) (*models.Project, error) {
	if err := ValidateProjectID(id); err != nil {
		return nil, err
	}

	project := r.record(id, src)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(project).Error
	if err != nil {
		return nil, errs.NewDatabaseError("update", "project", err)
	}
	return project, nil
}

func (r *GormProjectRepo) Get(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("project")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	return &project, nil
}

func (r *GormProjectRepo) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, errs.NewDatabaseError("count", "project", err)
	}
	return count > 0, nil
}

func (r *GormProjectRepo) record(id string, src models.Source) *models.Project {
	return &models.Project{
		ID:        id,
		HTML:      src.HTML,
		CSS:       src.CSS,
		JS:        src.JS,
		UpdatedAt: r.now().UTC(),
	}
}
