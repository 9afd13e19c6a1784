package entities

import (
	"github.com/urfave/cli/v2"

	"github.com/oarkflow/listingfilter/internal/interfaces"
	"github.com/oarkflow/listingfilter/internal/logging"
)

var (
	CliApp    *cli.App
	Config    interfaces.Config
	Logger    = logging.NewDefault()
	Workspace interfaces.FS
)
