package api

import (
	"github.com/go-chi/chi/v5"
)

// setupFrontendRoutes registers the editor's JSON, upload and download
// endpoints plus the static front end.
func setupFrontendRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/healthz", handlers.pageHandler.healthz())

	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Projects
		r.Post("/save", handlers.projectHandler.saveProject())
		r.With(withSession).Put("/save/{projectID}", handlers.projectHandler.saveProject())
		r.Get("/api/project/{projectID}", handlers.projectHandler.getProject())
		r.Get("/api/project/{projectID}/preview", handlers.projectHandler.previewProject())

		// Project assets
		r.Group(func(r chi.Router) {
			r.Use(withSession)
			r.Get("/api/assets/{projectID}", handlers.assetHandler.listAssets())
			r.Get("/api/assets/{projectID}/usage", handlers.assetHandler.listAssetUsage())
			r.Delete("/api/assets/{projectID}/{filename}", handlers.assetHandler.deleteAsset())
			r.Post("/upload/{projectID}", handlers.assetHandler.uploadAssets())
			r.Get("/assets/{projectID}/{filename}", handlers.assetHandler.readAsset())
			r.Post("/package/{projectID}", handlers.archiveHandler.exportArchive())
		})

		// Imported uploads
		r.Get("/api/assets", handlers.assetHandler.listUploads())
		r.Get("/uploads/{filename}", handlers.assetHandler.readUpload())
		r.Post("/importzip", handlers.archiveHandler.importArchive())

		// Templates
		r.Get("/api/templates", handlers.templateHandler.listTemplates())
		r.Get("/api/template/{templateID}", handlers.templateHandler.getTemplate())
	})

	// Front end
	r.Get("/p/{projectID}", handlers.pageHandler.projectPage())
	r.Handle("/*", handlers.pageHandler.static())
}
