package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/oarkflow/listingfilter/internal/entities"
	"github.com/oarkflow/listingfilter/internal/interfaces"
	"github.com/oarkflow/listingfilter/internal/page"
	"github.com/oarkflow/listingfilter/internal/toggle"
)

// FilterCommand replays control clicks on a saved listing page.
type FilterCommand struct{}

func (f *FilterCommand) Signature() string {
	return "filter"
}

func (f *FilterCommand) Description() string {
	return "Apply files/images toggle clicks to a listing page and print the result"
}

func (f *FilterCommand) ArgsUsage() string {
	return "[page.html]"
}

func (f *FilterCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "click",
			Aliases: []string{"c"},
			Usage:   "Control to click, in order: files or images (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "files",
			Usage: "Shorthand for a single files click",
		},
		&cli.BoolFlag{
			Name:  "images",
			Usage: "Shorthand for a single images click, after --files",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write the page to this file instead of stdout",
		},
	}
}

func (f *FilterCommand) Handle(c *cli.Context) error {
	clicks, err := clicksFromFlags(c)
	if err != nil {
		return err
	}
	in, closeIn, err := openInput(c)
	if err != nil {
		return err
	}
	defer closeIn()

	out := c.App.Writer
	if path := c.String("output"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		out = file
	}
	ctrl, err := page.Process(in, out, clicks...)
	if err != nil {
		return err
	}
	entities.Logger.Debug().
		Stringer("files", ctrl.FilesState()).
		Stringer("images", ctrl.ImagesState()).
		Bool("files_unavailable", ctrl.Files().Unavailable).
		Bool("images_unavailable", ctrl.Images().Unavailable).
		Msg("page filtered")
	return nil
}

func (f *FilterCommand) Subcommands() []interfaces.Command {
	return []interfaces.Command{}
}

func clicksFromFlags(c *cli.Context) ([]toggle.Click, error) {
	var clicks []toggle.Click
	if c.Bool("files") {
		clicks = append(clicks, toggle.ClickFiles)
	}
	if c.Bool("images") {
		clicks = append(clicks, toggle.ClickImages)
	}
	for _, s := range c.StringSlice("click") {
		k, err := toggle.ParseClick(s)
		if err != nil {
			return nil, err
		}
		clicks = append(clicks, k)
	}
	return clicks, nil
}

// openInput reads the first argument, or stdin when it is absent or "-".
func openInput(c *cli.Context) (io.Reader, func(), error) {
	path := c.Args().First()
	if path == "" || path == "-" {
		return c.App.Reader, func() {}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open page: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}
