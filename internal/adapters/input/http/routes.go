package http

import "github.com/gofiber/fiber/v2"

// Register mounts the site and API routes. /books/search is registered
// before /books/:id so the literal segment wins.
func (hdl *HTTPHandler) Register(app fiber.Router) {
	app.Get("/health", hdl.HealthCheck)

	app.Get("/", hdl.Index)
	books := app.Group("/books")
	{
		books.Get("/search", hdl.SearchBooks)
		books.Get("/:id", hdl.GetBook)
	}

	api := app.Group("/v1/api/books")
	{
		api.Get("/search", hdl.SearchBooksAPI)
		api.Get("/:id/recommendations", hdl.GetRecommendations)
	}
}
