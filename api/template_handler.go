package api

import (
	"net/http"

	"github.com/rpupo63/playground-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type templateHandler struct {
	responder  Responder
	logger     zerolog.Logger
	playground *services.Playground
}

func newTemplateHandler(playground *services.Playground) templateHandler {
	logger := log.With().Str("handlerName", "templateHandler").Logger()

	return templateHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		playground: playground,
	}
}

// listTemplates returns every template's id and name
// @Summary List templates
// @Tags Templates
// @Produce json
// @Success 200 {array} models.TemplateSummary
// @Router /api/templates [get]
func (h templateHandler) listTemplates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := h.playground.ListTemplates(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, templates)
	}
}

// getTemplate returns one template with its source
// @Summary Get template
// @Tags Templates
// @Produce json
// @Param templateID path string true "Template ID"
// @Success 200 {object} models.Template
// @Failure 404 {object} ErrorResponse "Not Found - Template not found"
// @Router /api/template/{templateID} [get]
func (h templateHandler) getTemplate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		template, err := h.playground.GetTemplate(r.Context(), pathParam(r, "templateID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, template)
	}
}
