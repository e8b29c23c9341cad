package api

import (
	"github.com/rpupo63/playground-backend/config"
	"github.com/rpupo63/playground-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(playground *services.Playground, settings config.Settings, r router) *routeHandlers {
	return &routeHandlers{
		projectHandler:  newProjectHandler(playground, settings.MaxJSONBodyBytes),
		assetHandler:    newAssetHandler(playground, settings.MaxUploadBytes),
		templateHandler: newTemplateHandler(playground),
		archiveHandler:  newArchiveHandler(playground, settings.MaxJSONBodyBytes, settings.MaxUploadBytes),
		pageHandler:     newPageHandler(settings.StaticDir, r.startupTime),
	}
}
