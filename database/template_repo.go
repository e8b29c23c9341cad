package database

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rpupo63/playground-backend/errs"
	"github.com/rpupo63/playground-backend/models"
	"gopkg.in/yaml.v3"
)

var templateExtensions = []string{".json", ".yaml", ".yml"}

// TemplateRepo reads template records from a directory. Records are never
// written by the service.
type TemplateRepo struct {
	dir string
}

func NewTemplateRepo(dir string) *TemplateRepo {
	return &TemplateRepo{dir: dir}
}

// List returns every template summary ordered by id.
func (r *TemplateRepo) List(ctx context.Context) ([]models.TemplateSummary, error) {
	entries, err := os.ReadDir(r.dir)
	if errors.Is(err, os.ErrNotExist) {
		return []models.TemplateSummary{}, nil
	}
	if err != nil {
		return nil, errs.NewStorageError("list", "templates", err)
	}

	summaries := []models.TemplateSummary{}
	seen := map[string]bool{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !isTemplateFile(entry.Name()) {
			continue
		}
		tmpl, err := r.load(filepath.Join(r.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if seen[tmpl.ID] {
			continue
		}
		seen[tmpl.ID] = true
		summaries = append(summaries, tmpl.Summary())
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries, nil
}

// Get loads the template stored as <id>.json, <id>.yaml or <id>.yml.
func (r *TemplateRepo) Get(ctx context.Context, id string) (*models.Template, error) {
	if err := ValidateProjectID(id); err != nil {
		return nil, errs.NewNotFound("template")
	}
	for _, ext := range templateExtensions {
		tmpl, err := r.load(filepath.Join(r.dir, id+ext))
		if errs.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return tmpl, nil
	}
	return nil, errs.NewNotFound("template")
}

func (r *TemplateRepo) load(path string) (*models.Template, error) {
	raw, err := readFile(path, "template")
	if err != nil {
		return nil, err
	}

	var tmpl models.Template
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(raw, &tmpl)
	} else {
		err = yaml.Unmarshal(raw, &tmpl)
	}
	if err != nil {
		return nil, errs.NewStorageError("decode", "template "+filepath.Base(path), err)
	}

	if tmpl.ID == "" {
		base := filepath.Base(path)
		tmpl.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &tmpl, nil
}

func isTemplateFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range templateExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
