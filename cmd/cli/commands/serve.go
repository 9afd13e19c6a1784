package commands

import (
	"github.com/urfave/cli/v2"

	"github.com/oarkflow/listingfilter/cmd/common"
	"github.com/oarkflow/listingfilter/cmd/web"
	"github.com/oarkflow/listingfilter/internal/entities"
	"github.com/oarkflow/listingfilter/internal/interfaces"
)

type ServeCommand struct {
	Env string
}

func (s *ServeCommand) Signature() string {
	return "serve"
}

func (s *ServeCommand) Description() string {
	return "Serve directory listings with files-only and image-preview toggles"
}

func (s *ServeCommand) ArgsUsage() string {
	return "[directory...]"
}

func (s *ServeCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Aliases: []string{"H"},
			Usage:   "Address to listen on; defaults to APP_HOST",
		},
		&cli.BoolFlag{
			Name:  "open",
			Usage: "Open the listing in a browser once the server is ready",
		},
	}
}

func (s *ServeCommand) Handle(c *cli.Context) error {
	if err := common.SetupWorkspace(c.Args().Slice()...); err != nil {
		return err
	}
	host := c.String("host")
	if host == "" {
		host = entities.Config.GetString("app.host")
	}
	if c.Bool("open") {
		entities.Config.Add("app.open_browser", true)
	}
	app := web.NewApp(s.Env, entities.Workspace)
	return web.Serve(app, s.Env, host)
}

func (s *ServeCommand) Subcommands() []interfaces.Command {
	return []interfaces.Command{}
}
