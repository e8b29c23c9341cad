package api

import (
	"net/http"

	"github.com/rpupo63/playground-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder    Responder
	logger       zerolog.Logger
	playground   *services.Playground
	maxBodyBytes int64
}

func newProjectHandler(playground *services.Playground, maxBodyBytes int64) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		playground:   playground,
		maxBodyBytes: maxBodyBytes,
	}
}

// saveProject creates a project (POST /save) or overwrites the one named in
// the path (PUT /save/{projectID})
// @Summary Save project
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string false "Project ID"
// @Param project body SourceRequest true "Project source"
// @Success 200 {object} services.SaveResult "Project id and page url"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid body or projectID"
// @Failure 413 {object} ErrorResponse "Request body too large"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Storage failure"
// @Router /save [post]
// @Router /save/{projectID} [put]
func (h projectHandler) saveProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body SourceRequest
		if err := decodeJSON(w, r, h.maxBodyBytes, &body); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		result, err := h.playground.SaveProject(r.Context(), ctxGetSession(r.Context()), body.Source())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, result)
	}
}

// getProject returns the stored record
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} models.Project "Stored project"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/project/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.playground.GetProject(r.Context(), pathParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// previewProject returns the project source with asset references pointing
// at the served asset urls
// @Summary Preview project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID"
// @Success 200 {object} models.Source
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/project/{projectID}/preview [get]
func (h projectHandler) previewProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		src, err := h.playground.PreviewSource(r.Context(), pathParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, src)
	}
}
