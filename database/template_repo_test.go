package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpupo63/playground-backend/errs"
	"github.com/rpupo63/playground-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemplate(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestTemplateRepoList(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "starter.json", `{"id":"starter","name":"Starter","html":"<h1>Hi</h1>"}`)
	writeTemplate(t, dir, "animation.yaml", "name: Animation\ncss: \"div{}\"\n")
	writeTemplate(t, dir, "README.md", "not a template")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))

	repo := NewTemplateRepo(dir)
	summaries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.TemplateSummary{
		{ID: "animation", Name: "Animation"},
		{ID: "starter", Name: "Starter"},
	}, summaries)
}

func TestTemplateRepoListMissingDir(t *testing.T) {
	repo := NewTemplateRepo(filepath.Join(t.TempDir(), "absent"))

	summaries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestTemplateRepoListMalformed(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "broken.json", `{"id":`)

	_, err := NewTemplateRepo(dir).List(context.Background())
	assert.True(t, errs.IsStorage(err))
}

func TestTemplateRepoGet(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "starter.json", `{"name":"Starter","html":"<h1>Hi</h1>","css":"h1{}","js":"go()"}`)
	writeTemplate(t, dir, "grid.yml", "name: Grid\nhtml: <div></div>\n")
	repo := NewTemplateRepo(dir)

	tmpl, err := repo.Get(context.Background(), "starter")
	require.NoError(t, err)
	assert.Equal(t, &models.Template{ID: "starter", Name: "Starter", HTML: "<h1>Hi</h1>", CSS: "h1{}", JS: "go()"}, tmpl)

	tmpl, err = repo.Get(context.Background(), "grid")
	require.NoError(t, err)
	assert.Equal(t, "<div></div>", tmpl.HTML)

	_, err = repo.Get(context.Background(), "unknown")
	assert.True(t, errs.IsNotFound(err))

	_, err = repo.Get(context.Background(), "../starter")
	assert.True(t, errs.IsNotFound(err))
}
