package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/rpupo63/playground-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const exportFilename = "project.zip"

type archiveHandler struct {
	responder      Responder
	logger         zerolog.Logger
	playground     *services.Playground
	maxBodyBytes   int64
	maxUploadBytes int64
}

func newArchiveHandler(playground *services.Playground, maxBodyBytes, maxUploadBytes int64) archiveHandler {
	logger := log.With().Str("handlerName", "archiveHandler").Logger()

	return archiveHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		playground:     playground,
		maxBodyBytes:   maxBodyBytes,
		maxUploadBytes: maxUploadBytes,
	}
}

// zipResponse sets the download headers on the first write so that a
// failure before any archive byte is produced can still be reported as JSON.
type zipResponse struct {
	w       http.ResponseWriter
	started bool
}

func (z *zipResponse) Write(p []byte) (int, error) {
	if !z.started {
		z.started = true
		z.w.Header().Set("Content-Type", "application/zip")
		z.w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
		z.w.WriteHeader(http.StatusOK)
	}
	return z.w.Write(p)
}

// exportArchive streams the project as a zip download
// @Summary Export project archive
// @Tags Archives
// @Accept json
// @Produce application/zip
// @Param projectID path string true "Project ID"
// @Param project body SourceRequest true "Current source"
// @Success 200 {file} binary "project.zip"
// @Router /package/{projectID} [post]
func (h archiveHandler) exportArchive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body SourceRequest
		if err := decodeJSON(w, r, h.maxBodyBytes, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		session := ctxGetSession(r.Context())
		out := &zipResponse{w: w}
		manifest, err := h.playground.ExportArchive(r.Context(), out, session.ProjectID, body.Source())
		if err != nil {
			if !out.started {
				h.responder.WriteError(w, err)
				return
			}
			h.logger.Error().Err(err).Str("projectID", session.ProjectID).Msg("export failed mid-stream")
			return
		}

		h.logger.Info().
			Str("projectID", session.ProjectID).
			Strs("included", manifest.Included).
			Strs("skipped", manifest.Skipped).
			Msg("project exported")
	}
}

// importArchive unpacks the multipart "zip" part
// @Summary Import project archive
// @Tags Archives
// @Accept mpfd
// @Produce json
// @Param zip formData file true "Zip archive"
// @Success 200 {object} models.ImportedProject
// @Failure 400 {object} ErrorResponse "No zip supplied or invalid archive"
// @Router /importzip [post]
func (h archiveHandler) importArchive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

		var upload io.Reader
		file, _, err := r.FormFile("zip")
		switch {
		case err == nil:
			defer file.Close()
			upload = file
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			// reported by the import as an empty upload
		default:
			h.responder.WriteError(w, multipartError(err, h.maxUploadBytes))
			return
		}
		if r.MultipartForm != nil {
			defer r.MultipartForm.RemoveAll()
		}

		imported, err := h.playground.ImportArchive(r.Context(), upload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, imported)
	}
}
