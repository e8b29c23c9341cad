package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/playground-backend/errs"
	"github.com/rpupo63/playground-backend/models"
)

var (
	indexPattern  = regexp.MustCompile(`(?i)index\.html?$`)
	stylePattern  = regexp.MustCompile(`(?i)\.css$`)
	scriptPattern = regexp.MustCompile(`(?i)\.js$`)
)

var errMemberTooLarge = errors.New("archive member exceeds size limit")

// Decode reads a zip archive. index.html/index.htm (at any depth) supplies
// html, *.css supplies css and *.js supplies js; when several members
// match, the last one in archive order wins. Every other file is written to
// sink under its base name and reported in the result.
func (c Codec) Decode(ctx context.Context, r io.ReaderAt, size int64, sink AssetSink) (*models.ImportedProject, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, errs.NewInvalidArchiveError(err)
	}

	result := &models.ImportedProject{Assets: []string{}}
	reported := map[string]bool{}

	for _, f := range zr.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := strings.ReplaceAll(f.Name, `\`, "/")
		if f.FileInfo().IsDir() || strings.HasSuffix(name, "/") {
			continue
		}

		data, err := readMember(f)
		if err != nil {
			return nil, errs.NewInvalidArchiveError(fmt.Errorf("%s: %w", f.Name, err))
		}

		switch {
		case indexPattern.MatchString(name):
			c.noteDuplicate(result.HTML, name)
			result.HTML = UnwrapHTML(string(data))
		case stylePattern.MatchString(name):
			c.noteDuplicate(result.CSS, name)
			result.CSS = string(data)
		case scriptPattern.MatchString(name):
			c.noteDuplicate(result.JS, name)
			result.JS = string(data)
		default:
			base := path.Base(name)
			if base == "." || base == ".." || base == "/" || base == "" {
				c.logger.Warn().Str("member", f.Name).Msg("skipping archive member without a usable file name")
				continue
			}
			if err := sink.Put(ctx, base, data); err != nil {
				if errs.IsInvalidFilename(err) {
					c.logger.Warn().Err(err).Str("member", f.Name).Msg("skipping archive member the upload area rejects")
					continue
				}
				return nil, err
			}
			if !reported[base] {
				reported[base] = true
				result.Assets = append(result.Assets, base)
			}
		}
	}

	return result, nil
}

// DecodeUpload spools an uploaded archive to a temporary file under tmpDir,
// decodes it and removes the file again whatever the outcome. A nil upload
// fails with an empty-upload error.
func (c Codec) DecodeUpload(ctx context.Context, upload io.Reader, tmpDir string, sink AssetSink) (*models.ImportedProject, error) {
	if upload == nil {
		return nil, errs.NewEmptyUploadError("zip")
	}

	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return nil, errs.NewStorageError("prepare", "import spool directory", err)
	}
	spoolPath := filepath.Join(tmpDir, "playground-import-"+uuid.NewString()+".zip")
	spool, err := os.OpenFile(spoolPath, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, errs.NewStorageError("create", "import spool file", err)
	}
	defer func() {
		spool.Close()
		if err := os.Remove(spoolPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			c.logger.Warn().Err(err).Str("path", spoolPath).Msg("failed to remove import spool file")
		}
	}()

	size, err := io.Copy(spool, upload)
	if err != nil {
		return nil, errs.NewStorageError("write", "import spool file", err)
	}

	return c.Decode(ctx, spool, size, sink)
}

// DecodeBytes decodes an archive already held in memory.
func (c Codec) DecodeBytes(ctx context.Context, data []byte, sink AssetSink) (*models.ImportedProject, error) {
	return c.Decode(ctx, bytes.NewReader(data), int64(len(data)), sink)
}

func (c Codec) noteDuplicate(previous, member string) {
	if previous != "" {
		c.logger.Debug().Str("member", member).Msg("archive member replaces an earlier match")
	}
}

func readMember(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxMemberBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxMemberBytes {
		return nil, errMemberTooLarge
	}
	return data, nil
}
