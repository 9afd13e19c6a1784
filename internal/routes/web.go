package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/listingfilter/internal/http/controllers"
	"github.com/oarkflow/listingfilter/internal/interfaces"
)

func Web(app fiber.Router, workspace interfaces.FS) {
	home := controllers.NewHomeController(workspace)
	app.Use(redirectInvalidRoot(workspace))
	app.Get("/", home.Index)
	app.Get("/ping", home.Ping)
	app.Get("/view", home.View)
	app.Get("/get", home.Get)
}

func Api(app fiber.Router) {
	api := app.Group("/api")
	api.Post("/toggle", controllers.NewToggleController().Apply)
}

// redirectInvalidRoot sends requests naming an unknown root back to the index.
func redirectInvalidRoot(workspace interfaces.FS) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Query("root") == "" {
			return c.Next()
		}
		if _, ok := workspace.Storage(c.QueryInt("root", -1)); !ok {
			return c.Redirect("/")
		}
		return c.Next()
	}
}
