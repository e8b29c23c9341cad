package archive

import (
	"archive/zip"
	"context"
	"io"
	"sort"
	"time"

	"github.com/rpupo63/playground-backend/errs"
	"github.com/rpupo63/playground-backend/models"
	"github.com/rpupo63/playground-backend/usage"
)

// Manifest records which referenced assets made it into an export.
type Manifest struct {
	Included []string `json:"included"`
	Skipped  []string `json:"skipped"`
}

// Encode streams the export archive for src to w. Only stored assets that
// the source references are included; references to assets that are not
// stored are skipped without failing the export.
func (c Codec) Encode(ctx context.Context, w io.Writer, projectID string, src models.Source, assets AssetSource) (Manifest, error) {
	var manifest Manifest
	used := usage.ForSource(src)

	zw := zip.NewWriter(w)
	now := time.Now()

	for _, member := range []struct {
		name string
		body string
	}{
		{IndexMember, WrapHTML(src.HTML)},
		{StyleMember, src.CSS},
		{ScriptMember, src.JS},
	} {
		if err := writeMember(zw, member.name, []byte(member.body), now); err != nil {
			zw.Close()
			return manifest, err
		}
	}

	stored := []string{}
	if projectID != "" && len(used) > 0 {
		var err error
		stored, err = assets.List(ctx, projectID)
		if err != nil {
			zw.Close()
			return manifest, err
		}
		sort.Strings(stored)
	}

	resolved := make(map[string]bool, len(used))
	for _, name := range stored {
		if !used.Has(name) {
			continue
		}
		if err := ctx.Err(); err != nil {
			zw.Close()
			return manifest, err
		}

		data, err := assets.Read(ctx, projectID, name)
		if errs.IsNotFound(err) {
			// deleted between listing and reading
			continue
		}
		if err != nil {
			zw.Close()
			return manifest, err
		}
		if err := writeMember(zw, AssetsDir+name, data, now); err != nil {
			zw.Close()
			return manifest, err
		}
		manifest.Included = append(manifest.Included, name)
		resolved[usage.Fold(name)] = true
	}

	for _, ref := range used.Sorted() {
		if !resolved[ref] {
			manifest.Skipped = append(manifest.Skipped, ref)
		}
	}
	if len(manifest.Skipped) > 0 {
		c.logger.Debug().
			Str("projectID", projectID).
			Strs("skipped", manifest.Skipped).
			Msg("export skipped references to missing assets")
	}

	if err := zw.Close(); err != nil {
		return manifest, errs.NewInternalErrorWithCause("failed to finalize archive", err)
	}
	return manifest, nil
}

func writeMember(zw *zip.Writer, name string, data []byte, modified time.Time) error {
	fw, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: modified,
	})
	if err != nil {
		return errs.NewInternalErrorWithCause("failed to add archive member "+name, err)
	}
	if _, err := fw.Write(data); err != nil {
		return errs.NewInternalErrorWithCause("failed to write archive member "+name, err)
	}
	return nil
}
