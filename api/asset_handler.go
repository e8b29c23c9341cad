package api

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rpupo63/playground-backend/errs"
	"github.com/rpupo63/playground-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// multipartMemory is how much of a multipart body is held in memory before
// file parts spill to disk.
const multipartMemory = 32 << 20

type assetHandler struct {
	responder      Responder
	logger         zerolog.Logger
	playground     *services.Playground
	maxUploadBytes int64
}

func newAssetHandler(playground *services.Playground, maxUploadBytes int64) assetHandler {
	logger := log.With().Str("handlerName", "assetHandler").Logger()

	return assetHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		playground:     playground,
		maxUploadBytes: maxUploadBytes,
	}
}

// listAssets returns the project's asset filenames
// @Summary List project assets
// @Tags Assets
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {array} string "Filenames"
// @Router /api/assets/{projectID} [get]
func (h assetHandler) listAssets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := h.playground.ListAssets(r.Context(), ctxGetSession(r.Context()).ProjectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, names)
	}
}

// listAssetUsage returns the asset listing with in-use flags
// @Summary List project assets with usage
// @Tags Assets
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {array} models.AssetUsage "Filenames with usage"
// @Router /api/assets/{projectID}/usage [get]
func (h assetHandler) listAssetUsage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := h.playground.ListAssetUsage(r.Context(), ctxGetSession(r.Context()).ProjectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, report)
	}
}

// uploadAssets stores the multipart "files" parts in the project scope
// @Summary Upload assets
// @Tags Assets
// @Accept mpfd
// @Produce json
// @Param projectID path string true "Project ID"
// @Param files formData file true "Asset files"
// @Success 200 {object} services.UploadResult "Stored filenames"
// @Failure 413 {object} ErrorResponse "Upload too large"
// @Router /upload/{projectID} [post]
func (h assetHandler) uploadAssets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			h.responder.WriteError(w, multipartError(err, h.maxUploadBytes))
			return
		}
		defer r.MultipartForm.RemoveAll()

		headers := r.MultipartForm.File["files"]
		files := make([]services.UploadFile, 0, len(headers))
		for _, fh := range headers {
			data, err := readPart(fh)
			if err != nil {
				h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
				return
			}
			files = append(files, services.UploadFile{Filename: fh.Filename, Data: data})
		}

		result, err := h.playground.UploadAssets(r.Context(), ctxGetSession(r.Context()).ProjectID, files)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, result)
	}
}

// deleteAsset removes one asset from the project scope
// @Summary Delete asset
// @Tags Assets
// @Produce json
// @Param projectID path string true "Project ID"
// @Param filename path string true "Asset filename"
// @Success 200 {object} OKResponse
// @Failure 404 {object} ErrorResponse "Not Found - Asset not found"
// @Router /api/assets/{projectID}/{filename} [delete]
func (h assetHandler) deleteAsset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h.playground.DeleteAsset(r.Context(), ctxGetSession(r.Context()).ProjectID, pathParam(r, "filename"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, OKResponse{OK: true})
	}
}

// readAsset serves the raw bytes of a project asset
func (h assetHandler) readAsset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := pathParam(r, "filename")
		data, err := h.playground.ReadAsset(r.Context(), ctxGetSession(r.Context()).ProjectID, filename)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		http.ServeContent(w, r, filename, time.Time{}, bytes.NewReader(data))
	}
}

// listUploads returns the urls of files extracted by archive imports
// @Summary List imported uploads
// @Tags Assets
// @Produce json
// @Success 200 {array} string "Upload urls"
// @Router /api/assets [get]
func (h assetHandler) listUploads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		urls, err := h.playground.ListUploads(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, urls)
	}
}

// readUpload serves a file from the shared upload area
func (h assetHandler) readUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := pathParam(r, "filename")
		data, err := h.playground.ReadUpload(r.Context(), filename)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		http.ServeContent(w, r, filename, time.Time{}, bytes.NewReader(data))
	}
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// multipartError maps a failed multipart parse to an API error.
func multipartError(err error, maxBytes int64) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errs.NewMaxBodySizeExceededError(maxBytes)
	}
	return errs.NewMalformedPayloadError("multipart", err)
}
