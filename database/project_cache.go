package database

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rpupo63/playground-backend/models"
	"github.com/rs/zerolog"
)

const projectKeyPrefix = "playground:project:" // playground:project:{id} -> JSON record

// CachedProjectRepo keeps recently read or written projects in Redis in
// front of another ProjectStore. Writes go through to the wrapped store
// first; Redis failures are logged and never fail the operation.
type CachedProjectRepo struct {
	next   ProjectStore
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewCachedProjectRepo(next ProjectStore, client *redis.Client, ttl time.Duration, logger zerolog.Logger) *CachedProjectRepo {
	return &CachedProjectRepo{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "projectCache").Logger(),
	}
}

func (r *CachedProjectRepo) Create(ctx context.Context, src models.Source) (*models.Project, error) {
	project, err := r.next.Create(ctx, src)
	if err != nil {
		return nil, err
	}
	r.store(ctx, project)
	return project, nil
}

func (r *CachedProjectRepo) Update(ctx context.Context, id string, src models.Source) (*models.Project, error) {
	project, err := r.next.Update(ctx, id, src)
	if err != nil {
		r.evict(ctx, id)
		return nil, err
	}
	r.store(ctx, project)
	return project, nil
}

func (r *CachedProjectRepo) Get(ctx context.Context, id string) (*models.Project, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	switch {
	case err == nil:
		var project models.Project
		if jsonErr := json.Unmarshal(raw, &project); jsonErr == nil {
			return &project, nil
		}
		r.logger.Warn().Str("projectID", id).Msg("discarding undecodable cache entry")
	case !errors.Is(err, redis.Nil):
		r.logger.Warn().Err(err).Str("projectID", id).Msg("project cache read failed")
	}

	project, err := r.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, project)
	return project, nil
}

func (r *CachedProjectRepo) Exists(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(id)).Result()
	if err == nil && n > 0 {
		return true, nil
	}
	if err != nil {
		r.logger.Warn().Err(err).Str("projectID", id).Msg("project cache lookup failed")
	}
	return r.next.Exists(ctx, id)
}

func (r *CachedProjectRepo) key(id string) string {
	return projectKeyPrefix + id
}

func (r *CachedProjectRepo) store(ctx context.Context, project *models.Project) {
	raw, err := json.Marshal(project)
	if err != nil {
		r.logger.Warn().Err(err).Str("projectID", project.ID).Msg("failed to encode project for cache")
		return
	}
	if err := r.client.Set(ctx, r.key(project.ID), raw, r.ttl).Err(); err != nil {
		r.logger.Warn().Err(err).Str("projectID", project.ID).Msg("project cache write failed")
	}
}

func (r *CachedProjectRepo) evict(ctx context.Context, id string) {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		r.logger.Warn().Err(err).Str("projectID", id).Msg("project cache evict failed")
	}
}
