package services

import (
	"context"
	"io"
	"net/url"

	"github.com/rpupo63/playground-backend/archive"
	"github.com/rpupo63/playground-backend/database"
	"github.com/rpupo63/playground-backend/errs"
	"github.com/rpupo63/playground-backend/models"
	"github.com/rpupo63/playground-backend/usage"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Session carries the project the caller is currently editing. An empty
// ProjectID means the work has never been saved.
type Session struct {
	ProjectID string
}

// Saved reports whether the session is bound to a stored project.
func (s Session) Saved() bool {
	return s.ProjectID != ""
}

type SaveResult struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type UploadResult struct {
	OK    bool     `json:"ok"`
	Files []string `json:"files"`
}

// UploadFile is one named blob in an asset upload.
type UploadFile struct {
	Filename string `json:"filename"`
	Data     []byte `json:"-"`
}

// Playground implements the project, asset, template and archive
// operations on top of the configured stores.
type Playground struct {
	db     database.Database
	codec  archive.Codec
	tmpDir string
	logger zerolog.Logger
}

func NewPlayground(db database.Database, tmpDir string, logger zerolog.Logger) *Playground {
	logger = logger.With().Str("service", "playground").Logger()
	return &Playground{
		db:     db,
		codec:  archive.NewCodec(logger),
		tmpDir: tmpDir,
		logger: logger,
	}
}

// SaveProject creates a project when the session is unsaved and overwrites
// the session's project otherwise.
func (p *Playground) SaveProject(ctx context.Context, session Session, src models.Source) (SaveResult, error) {
	var (
		project *models.Project
		err     error
	)
	if session.Saved() {
		if err := validateProjectID(session.ProjectID); err != nil {
			return SaveResult{}, err
		}
		project, err = p.db.ProjectRepo().Update(ctx, session.ProjectID, src)
	} else {
		project, err = p.db.ProjectRepo().Create(ctx, src)
	}
	if err != nil {
		return SaveResult{}, err
	}

	p.logger.Info().
		Str("projectID", project.ID).
		Bool("created", !session.Saved()).
		Msg("project saved")

	return SaveResult{ID: project.ID, URL: ProjectURL(project.ID)}, nil
}

// ProjectURL is the shareable page for a project.
func ProjectURL(id string) string {
	return "/p/" + url.PathEscape(id)
}

func (p *Playground) GetProject(ctx context.Context, id string) (*models.Project, error) {
	if err := validateProjectID(id); err != nil {
		return nil, err
	}
	return p.db.ProjectRepo().Get(ctx, id)
}

// PreviewSource returns the stored source with relative asset references in
// html and css rewritten to the project's asset urls, ready for a live
// preview frame. JS is returned unchanged.
func (p *Playground) PreviewSource(ctx context.Context, id string) (models.Source, error) {
	project, err := p.GetProject(ctx, id)
	if err != nil {
		return models.Source{}, err
	}
	return models.Source{
		HTML: usage.PrefixAssetPaths(project.HTML, project.ID),
		CSS:  usage.PrefixAssetPaths(project.CSS, project.ID),
		JS:   project.JS,
	}, nil
}

// ListAssets returns the project's asset filenames in storage order.
func (p *Playground) ListAssets(ctx context.Context, projectID string) ([]string, error) {
	if err := validateProjectID(projectID); err != nil {
		return nil, err
	}
	return p.db.AssetRepo().List(ctx, projectID)
}

// ListAssetUsage annotates the asset listing with whether the stored
// source of the project still references each file. Assets of a project
// that was never saved are all reported unused.
func (p *Playground) ListAssetUsage(ctx context.Context, projectID string) ([]models.AssetUsage, error) {
	names, err := p.ListAssets(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var src models.Source
	project, err := p.db.ProjectRepo().Get(ctx, projectID)
	switch {
	case err == nil:
		src = project.Source()
	case !errs.IsNotFound(err):
		return nil, err
	}
	return usage.Annotate(names, src), nil
}

// uploadConcurrency bounds the parallel writes of one upload request.
const uploadConcurrency = 4

// UploadAssets stores every file under its own name in the project scope,
// replacing files of the same name. When the request names a file twice the
// stored content is whichever write lands last.
func (p *Playground) UploadAssets(ctx context.Context, projectID string, files []UploadFile) (UploadResult, error) {
	if err := validateProjectID(projectID); err != nil {
		return UploadResult{}, err
	}
	for _, f := range files {
		if err := validateUpload(f); err != nil {
			return UploadResult{}, err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)
	stored := make([]string, len(files))
	for i, f := range files {
		stored[i] = f.Filename
		g.Go(func() error {
			return p.db.AssetRepo().Put(gctx, projectID, f.Filename, f.Data)
		})
	}
	if err := g.Wait(); err != nil {
		return UploadResult{}, err
	}

	p.logger.Info().Str("projectID", projectID).Strs("files", stored).Msg("assets uploaded")
	return UploadResult{OK: true, Files: stored}, nil
}

func (p *Playground) DeleteAsset(ctx context.Context, projectID, filename string) error {
	if err := validateProjectID(projectID); err != nil {
		return err
	}
	if err := validateFilename("filename", filename); err != nil {
		return err
	}
	if err := p.db.AssetRepo().Delete(ctx, projectID, filename); err != nil {
		return err
	}
	p.logger.Info().Str("projectID", projectID).Str("filename", filename).Msg("asset deleted")
	return nil
}

func (p *Playground) ReadAsset(ctx context.Context, projectID, filename string) ([]byte, error) {
	if err := validateProjectID(projectID); err != nil {
		return nil, err
	}
	if err := validateFilename("filename", filename); err != nil {
		return nil, err
	}
	return p.db.AssetRepo().Read(ctx, projectID, filename)
}

func (p *Playground) ListTemplates(ctx context.Context) ([]models.TemplateSummary, error) {
	return p.db.TemplateRepo().List(ctx)
}

func (p *Playground) GetTemplate(ctx context.Context, id string) (*models.Template, error) {
	return p.db.TemplateRepo().Get(ctx, id)
}

// ExportArchive streams the zip for the given source to w. Assets are looked
// up in the project's scope; a blank projectID exports code only.
func (p *Playground) ExportArchive(ctx context.Context, w io.Writer, projectID string, src models.Source) (archive.Manifest, error) {
	if projectID != "" {
		if err := validateProjectID(projectID); err != nil {
			return archive.Manifest{}, err
		}
	}
	return p.codec.Encode(ctx, w, projectID, src, p.db.AssetRepo())
}

// ImportArchive unpacks an uploaded zip. Non-code members land in the
// shared upload area since no project exists for them yet.
func (p *Playground) ImportArchive(ctx context.Context, upload io.Reader) (*models.ImportedProject, error) {
	return p.codec.DecodeUpload(ctx, upload, p.tmpDir, p.db.UploadRepo())
}

// ListUploads returns the url of every file in the shared upload area.
func (p *Playground) ListUploads(ctx context.Context) ([]string, error) {
	names, err := p.db.UploadRepo().List(ctx)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(names))
	for _, name := range names {
		urls = append(urls, UploadURL(name))
	}
	return urls, nil
}

func (p *Playground) ReadUpload(ctx context.Context, filename string) ([]byte, error) {
	if err := validateFilename("filename", filename); err != nil {
		return nil, err
	}
	return p.db.UploadRepo().Read(ctx, filename)
}

// UploadURL is where a file of the shared upload area is served.
func UploadURL(filename string) string {
	return "/uploads/" + url.PathEscape(filename)
}
