package controllers

import (
	"bytes"
	"errors"
	"io/fs"

	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/listingfilter/filesystem"
	"github.com/oarkflow/listingfilter/internal/entities"
	"github.com/oarkflow/listingfilter/internal/interfaces"
	"github.com/oarkflow/listingfilter/internal/listing"
	"github.com/oarkflow/listingfilter/internal/page"
)

type HomeController struct {
	workspace interfaces.FS
}

type rootLink struct {
	Name string
	Path string
	Href string
}

func (h *HomeController) Ping(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *HomeController) Index(c *fiber.Ctx) error {
	paths := h.workspace.Paths()
	if len(paths) == 1 {
		return c.Redirect(listing.Query{}.Href(), fiber.StatusFound)
	}
	names := h.workspace.Names()
	roots := make([]rootLink, 0, len(paths))
	for i, p := range paths {
		roots = append(roots, rootLink{Name: names[i], Path: p, Href: listing.Query{Root: i}.Href()})
	}
	return c.Render("home-page", fiber.Map{
		"Title": "Directory listing for multiple paths",
		"Roots": roots,
	}, "layout")
}

// View renders a directory listing and replays the toggle state carried in
// the query on the rendered page.
func (h *HomeController) View(c *fiber.Ctx) error {
	q := listing.Query{
		Root:   c.QueryInt("root"),
		Dir:    c.Query("dir"),
		Files:  c.QueryBool("files"),
		Images: c.QueryBool("imgs"),
	}
	storage, ok := h.workspace.Storage(q.Root)
	if !ok {
		return c.Redirect("/", fiber.StatusFound)
	}
	l, err := listing.Build(storage, q)
	switch {
	case errors.Is(err, filesystem.ErrOutsideRoot):
		return c.Redirect("/", fiber.StatusFound)
	case errors.Is(err, fs.ErrNotExist):
		return fiber.NewError(fiber.StatusNotFound, "Directory not found")
	case err != nil:
		return err
	}

	var buf bytes.Buffer
	if err := c.App().Config().Views.Render(&buf, "listing", l, "layout"); err != nil {
		return err
	}
	var out bytes.Buffer
	ctrl, err := page.Process(&buf, &out, q.Clicks()...)
	if err != nil {
		return err
	}
	entities.Logger.Debug().
		Int("root", q.Root).
		Str("dir", l.Directory).
		Stringer("files", ctrl.FilesState()).
		Stringer("images", ctrl.ImagesState()).
		Int("eligible", len(ctrl.Eligible())).
		Msg("listing rendered")
	c.Type("html", "utf-8")
	return c.Send(out.Bytes())
}

func (h *HomeController) Get(c *fiber.Ctx) error {
	storage, ok := h.workspace.Storage(c.QueryInt("root"))
	if !ok {
		return c.Redirect("/", fiber.StatusFound)
	}
	content, mimeType, err := storage.ReadFile(c.Query("file"))
	switch {
	case errors.Is(err, filesystem.ErrOutsideRoot):
		return fiber.NewError(fiber.StatusBadRequest, "Invalid file path")
	case err != nil:
		return fiber.NewError(fiber.StatusNotFound, "File not found")
	}
	c.Set(fiber.HeaderContentType, mimeType)
	return c.Send(content)
}

func NewHomeController(workspace interfaces.FS) *HomeController {
	return &HomeController{workspace: workspace}
}
