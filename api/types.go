package api

import "github.com/rpupo63/playground-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler  projectHandler
	assetHandler    assetHandler
	templateHandler templateHandler
	archiveHandler  archiveHandler
	pageHandler     pageHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"not found"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"filename"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// SourceRequest is the body of save and package requests. Missing fields
// are treated as empty text.
type SourceRequest struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
	JS   string `json:"js"`
}

func (s SourceRequest) Source() models.Source {
	return models.Source{HTML: s.HTML, CSS: s.CSS, JS: s.JS}
}

// OKResponse acknowledges a mutation without a payload.
type OKResponse struct {
	OK bool `json:"ok"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	StartedAt     string `json:"startedAt"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}
