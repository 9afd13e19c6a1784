package controllers

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/oarkflow/listingfilter/internal/http/requests"
	"github.com/oarkflow/listingfilter/internal/page"
	"github.com/oarkflow/listingfilter/internal/toggle"
)

// ToggleRequest carries a rendered listing page and the clicks to replay on it.
type ToggleRequest struct {
	HTML   string   `json:"html" validate:"required"`
	Clicks []string `json:"clicks"`
}

type controlState struct {
	toggle.Control
	State string `json:"state"`
}

type ToggleResponse struct {
	HTML    string         `json:"html"`
	Files   controlState   `json:"files"`
	Images  controlState   `json:"images"`
	Entries []toggle.Entry `json:"entries"`
}

type ToggleController struct{}

func (t *ToggleController) Apply(c *fiber.Ctx) error {
	req, err := requests.Validate[ToggleRequest](c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	clicks := make([]toggle.Click, 0, len(req.Clicks))
	for _, s := range req.Clicks {
		k, err := toggle.ParseClick(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		clicks = append(clicks, k)
	}
	var out bytes.Buffer
	ctrl, err := page.Process(strings.NewReader(req.HTML), &out, clicks...)
	if err != nil {
		return err
	}
	return c.JSON(ToggleResponse{
		HTML:    out.String(),
		Files:   controlState{Control: ctrl.Files(), State: ctrl.FilesState().String()},
		Images:  controlState{Control: ctrl.Images(), State: ctrl.ImagesState().String()},
		Entries: ctrl.Entries(),
	})
}

func NewToggleController() *ToggleController {
	return &ToggleController{}
}
